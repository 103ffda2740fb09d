package http

import (
	"context"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/gorilla/mux"

	"github.com/hitbadge/hitbadge/core"
)

// Key constraints enforced before a request reaches the counting core.
const keyMaxLength = 128

const keyPattern = `^[A-Za-z0-9._~-]+$`

// BadgeGet counts a visit for the requested key and responds with the themed
// count image.
func BadgeGet(fn core.BadgeGetFunc) Handler {
	return func(ctx context.Context, w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		if err := validateKey(key); err != nil {
			respondError(w, 0, err)
			return
		}

		opts, err := extractBadgeOptions(r)
		if err != nil {
			respondError(w, 0, err)
			return
		}

		b, err := fn(key, opts)
		if err != nil {
			respondError(w, 0, err)
			return
		}

		respondImage(w, http.StatusOK, b)
	}
}

func validateKey(key string) error {
	if key == "" {
		return wrapError(ErrBadRequest, "key missing")
	}

	if len(key) > keyMaxLength {
		return wrapError(ErrBadRequest, "key exceeds %d characters", keyMaxLength)
	}

	if !govalidator.StringMatches(key, keyPattern) {
		return wrapError(ErrBadRequest, "key contains forbidden characters")
	}

	return nil
}
