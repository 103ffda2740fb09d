package core

import (
	"strconv"
	"strings"

	"github.com/hitbadge/hitbadge/platform/cache"
	"github.com/hitbadge/hitbadge/render"
	"github.com/hitbadge/hitbadge/service/counter"
	"github.com/hitbadge/hitbadge/service/theme"
)

const cacheNamespace = "render"

// BadgeOptions carry the per-request rendering inputs.
type BadgeOptions struct {
	Format    string
	MinLength uint
	Peek      bool
	Theme     string
}

// BadgeConfig fixes the instance-wide rendering defaults.
type BadgeConfig struct {
	Format    string
	MinLength uint
	Pixelated bool
}

// Badge is a rendered counter image.
type Badge struct {
	ContentType string
	Count       uint64
	Data        []byte
}

// BadgeGetFunc counts a visit for key and renders the resulting count as a
// themed image.
type BadgeGetFunc func(key string, opts BadgeOptions) (*Badge, error)

// BadgeGet combines counting, theme resolution and rendering. Unknown themes
// and formats degrade to the configured defaults; rendered bytes are cached
// by (theme, count, length, format), which is key-independent, so hot counts
// share cache entries across keys.
func BadgeGet(
	counters counter.Service,
	themes *theme.Registry,
	renders cache.ByteService,
	config BadgeConfig,
) BadgeGetFunc {
	return func(key string, opts BadgeOptions) (*Badge, error) {
		var (
			count uint64
			err   error
		)

		if opts.Peek {
			count, err = counters.Peek(key)
		} else {
			count, err = counters.Increment(key)
		}
		if err != nil {
			return nil, err
		}

		t, _ := themes.Resolve(opts.Theme)
		requested := opts.Format
		if requested == "" {
			requested = config.Format
		}

		format, _ := render.ParseFormat(requested)

		minLength := config.MinLength
		if opts.MinLength > 0 {
			minLength = opts.MinLength
		}

		cacheKey := renderKey(t.Name, count, minLength, format)

		if data, err := renders.Get(cacheNamespace, cacheKey); err == nil {
			return &Badge{
				ContentType: format.MIME(),
				Count:       count,
				Data:        data,
			}, nil
		}

		glyphs := render.Compose(count, minLength, t)

		data, served, err := render.Encode(glyphs, t.Layout.Spacing, format, render.SVGOptions{
			Pixelated: config.Pixelated,
			Title:     strconv.FormatUint(count, 10),
		})
		if err != nil {
			return nil, err
		}

		// Cache only bytes that match the requested format, so fallbacks
		// never poison entries of the format they substituted.
		if served == format {
			_ = renders.Set(cacheNamespace, cacheKey, data)
		}

		return &Badge{
			ContentType: served.MIME(),
			Count:       count,
			Data:        data,
		}, nil
	}
}

func renderKey(themeName string, count uint64, minLength uint, f render.Format) string {
	return strings.Join([]string{
		themeName,
		strconv.FormatUint(count, 10),
		strconv.FormatUint(uint64(minLength), 10),
		string(f),
	}, cache.KeySeparator)
}
