package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/hitbadge/hitbadge/core"
)

func TestBadgeGet(t *testing.T) {
	var (
		fn = func(key string, opts core.BadgeOptions) (*core.Badge, error) {
			return &core.Badge{
				ContentType: "image/svg+xml",
				Count:       3,
				Data:        []byte("<?xml version=\"1.0\"?><svg></svg>"),
			}, nil
		}

		rec = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/myrepo", nil)
	)

	serveBadge(fn, rec, req)

	if have, want := rec.Code, http.StatusOK; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if have, want := rec.Header().Get("Content-Type"), "image/svg+xml"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if have, want := rec.Header().Get("Cache-Control"), "no-cache, no-store, must-revalidate"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !strings.HasPrefix(rec.Body.String(), "<?xml") {
		t.Error("missing xml declaration")
	}
}

func TestBadgeGetOptions(t *testing.T) {
	var (
		got core.BadgeOptions

		fn = func(key string, opts core.BadgeOptions) (*core.Badge, error) {
			got = opts

			return &core.Badge{ContentType: "image/png", Data: []byte{}}, nil
		}

		rec = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/myrepo?format=png&length=4&peek=true&theme=moe", nil)
	)

	serveBadge(fn, rec, req)

	if have, want := rec.Code, http.StatusOK; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	want := core.BadgeOptions{
		Format:    "png",
		MinLength: 4,
		Peek:      true,
		Theme:     "moe",
	}

	if got != want {
		t.Errorf("have %v, want %v", got, want)
	}
}

func TestBadgeGetInvalidParams(t *testing.T) {
	var (
		fn = func(key string, opts core.BadgeOptions) (*core.Badge, error) {
			t.Error("handler reached core")

			return nil, nil
		}
	)

	for _, target := range []string{
		"/myrepo?length=abc",
		"/myrepo?peek=perhaps",
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest("GET", target, nil)

		serveBadge(fn, rec, req)

		if have, want := rec.Code, http.StatusBadRequest; have != want {
			t.Errorf("%s: have %v, want %v", target, have, want)
		}
	}
}

func TestBadgeGetStorageUnavailable(t *testing.T) {
	var (
		fn = func(key string, opts core.BadgeOptions) (*core.Badge, error) {
			return nil, wrapError(ErrStorageUnavailable, "%s", key)
		}

		rec = httptest.NewRecorder()
		req = httptest.NewRequest("GET", "/myrepo", nil)
	)

	serveBadge(fn, rec, req)

	if have, want := rec.Code, http.StatusServiceUnavailable; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestValidateKey(t *testing.T) {
	for _, key := range []string{
		"a",
		"user.repo",
		"User.less-dashed~key",
		"0123456789",
		strings.Repeat("k", keyMaxLength),
	} {
		if err := validateKey(key); err != nil {
			t.Errorf("%q: %v", key, err)
		}
	}

	for _, key := range []string{
		"",
		"with space",
		"slash/key",
		"percent%20key",
		"emoji❤",
		strings.Repeat("k", keyMaxLength+1),
	} {
		err := validateKey(key)
		if err == nil {
			t.Errorf("%q accepted", key)
			continue
		}

		if have, want := unwrapError(err), ErrBadRequest; have != want {
			t.Errorf("have %v, want %v", have, want)
		}
	}
}

func serveBadge(fn core.BadgeGetFunc, w http.ResponseWriter, r *http.Request) {
	router := mux.NewRouter()

	router.Methods("GET").Path(`/{key:[A-Za-z0-9._~-]+}`).HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			BadgeGet(fn)(context.Background(), w, r)
		},
	)

	router.ServeHTTP(w, r)
}
