package http

import (
	"net/http"
	"strconv"

	"github.com/hitbadge/hitbadge/core"
)

// Query parameters understood by the badge route.
const (
	paramFormat = "format"
	paramLength = "length"
	paramPeek   = "peek"
	paramTheme  = "theme"
)

func extractBadgeOptions(r *http.Request) (core.BadgeOptions, error) {
	var (
		params = r.URL.Query()

		opts = core.BadgeOptions{
			Format: params.Get(paramFormat),
			Theme:  params.Get(paramTheme),
		}
	)

	if raw := params.Get(paramLength); raw != "" {
		l, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return opts, wrapError(ErrBadRequest, "length '%s' is not a number", raw)
		}

		opts.MinLength = uint(l)
	}

	if raw := params.Get(paramPeek); raw != "" {
		p, err := strconv.ParseBool(raw)
		if err != nil {
			return opts, wrapError(ErrBadRequest, "peek '%s' is not a boolean", raw)
		}

		opts.Peek = p
	}

	return opts, nil
}
