package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gomodule/redigo/redis"
	"github.com/jmoiron/sqlx"

	"github.com/hitbadge/hitbadge/core"
)

const pgHealthcheck = `SELECT 1`

// Handler is the badge specific http.HandlerFunc expecting a context.Context.
type Handler func(context.Context, http.ResponseWriter, *http.Request)

// Middleware can be used to chain Handlers with different responsibilities.
type Middleware func(Handler) Handler

// Chain takes a variadic number of Middlewares and returns a combined
// Middleware.
func Chain(ms ...Middleware) Middleware {
	return func(handler Handler) Handler {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}

		return handler
	}
}

// Wrap takes a Middleware and Handler and returns an http.HandlerFunc.
func Wrap(
	middleware Middleware,
	handler Handler,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		middleware(handler)(r.Context(), w, r)
	}
}

// Health checks for liveliness of backing services and responds with status.
// Backends the deployment runs without are left out of the report.
func Health(pg *sqlx.DB, rClient *redis.Pool) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		res := struct {
			Healthy  bool            `json:"healthy"`
			Services map[string]bool `json:"services"`
		}{
			Healthy:  true,
			Services: map[string]bool{},
		}

		if pg != nil {
			res.Services["postgres"] = true

			if _, err := pg.Exec(pgHealthcheck); err != nil {
				res.Healthy = false
				res.Services["postgres"] = false
			}
		}

		if rClient != nil {
			res.Services["redis"] = true

			conn := rClient.Get()
			if err := conn.Err(); err != nil {
				res.Healthy = false
				res.Services["redis"] = false
			}
			conn.Close()
		}

		if !res.Healthy {
			respondJSON(w, http.StatusInternalServerError, &res)
			return
		}

		respondJSON(w, http.StatusOK, &res)
	}
}

// Status reports bare process liveness.
func Status() Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, struct {
			Status string `json:"status"`
		}{
			Status: "ok",
		})
	}
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func respondError(w http.ResponseWriter, code int, err error) {
	statusCode := http.StatusInternalServerError

	switch unwrapError(err) {
	case ErrBadRequest:
		statusCode = http.StatusBadRequest
	case ErrLimitExceeded:
		statusCode = http.StatusTooManyRequests
	case ErrNotFound:
		statusCode = http.StatusNotFound
	case ErrStorageUnavailable:
		statusCode = http.StatusServiceUnavailable
	}

	respondJSON(w, statusCode, struct {
		Errors []apiError `json:"errors"`
	}{
		Errors: []apiError{
			{Code: code, Message: err.Error()},
		},
	})
}

func respondImage(w http.ResponseWriter, statusCode int, b *core.Badge) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Content-Type", b.ContentType)
	w.WriteHeader(statusCode)
	_, _ = w.Write(b.Data)
}

func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
