package core

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hitbadge/hitbadge/platform/cache"
	"github.com/hitbadge/hitbadge/service/counter"
	"github.com/hitbadge/hitbadge/service/theme"
)

func TestBadgeGet(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{})

	b, err := fn("repo", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.Count, uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if have, want := b.ContentType, "image/svg+xml"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !bytes.HasPrefix(b.Data, []byte("<?xml")) {
		t.Error("missing xml declaration")
	}

	b, err = fn("repo", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.Count, uint64(2); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestBadgeGetPeek(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{})

	b, err := fn("quiet", BadgeOptions{Peek: true})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.Count, counter.CountUnseen; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if _, err := fn("quiet", BadgeOptions{}); err != nil {
		t.Fatal(err)
	}

	b, err = fn("quiet", BadgeOptions{Peek: true})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.Count, uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestBadgeGetFormat(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{})

	b, err := fn("raster", BadgeOptions{Format: "png"})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.ContentType, "image/png"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !bytes.HasPrefix(b.Data, []byte("\x89PNG")) {
		t.Error("missing png signature")
	}
}

func TestBadgeGetFormatFallback(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{})

	b, err := fn("lossy", BadgeOptions{Format: "webp"})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.ContentType, "image/svg+xml"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestBadgeGetThemeFallback(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{})

	b, err := fn("themed", BadgeOptions{Theme: "nonexistent"})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := b.Count, uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !strings.Contains(string(b.Data), "<image ") {
		t.Error("missing glyph images")
	}
}

func TestBadgeGetMinLength(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{MinLength: 4})

	b, err := fn("padded", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := strings.Count(string(b.Data), "<image "), 4; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	b, err = fn("padded", BadgeOptions{MinLength: 6})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := strings.Count(string(b.Data), "<image "), 6; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestBadgeGetPixelated(t *testing.T) {
	fn := prepareBadgeGet(t, BadgeConfig{Pixelated: true})

	b, err := fn("crisp", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(b.Data), "image-rendering: pixelated") {
		t.Error("missing pixelated style")
	}
}

func TestBadgeGetRenderCache(t *testing.T) {
	var (
		counters = counter.CacheService(counter.MemStore(), counter.CacheOptions{})
		renders  = cache.MemByteService()
	)

	themes, err := theme.NewRegistry(theme.BuiltinName, theme.Builtin())
	if err != nil {
		t.Fatal(err)
	}

	fn := BadgeGet(counters, themes, renders, BadgeConfig{})

	first, err := fn("cached", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	// A second key at the same count must serve byte-identical output from
	// the shared render cache.
	second, err := fn("other", BadgeOptions{})
	if err != nil {
		t.Fatal(err)
	}

	if have, want := second.Count, uint64(1); have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if !bytes.Equal(first.Data, second.Data) {
		t.Error("renders at equal counts differ")
	}
}

func prepareBadgeGet(t *testing.T, config BadgeConfig) BadgeGetFunc {
	t.Helper()

	counters := counter.CacheService(counter.MemStore(), counter.CacheOptions{})

	themes, err := theme.NewRegistry(theme.BuiltinName, theme.Builtin())
	if err != nil {
		t.Fatal(err)
	}

	return BadgeGet(counters, themes, cache.NopByteService(), config)
}
