package theme

import (
	"encoding/base64"
	"image"
	"sort"
	"strings"
)

// DigitCount is the number of glyphs a complete theme carries, one per
// decimal digit.
const DigitCount = 10

// Glyph is the visual asset for a single decimal digit.
type Glyph struct {
	Width  int
	Height int
	MIME   string
	// Data holds the encoded bytes as loaded, Image the decoded form used
	// for raster composition.
	Data  []byte
	Image image.Image
	// DataURI is the base64 embedding of Data used for vector composition,
	// precomputed once per glyph.
	DataURI string
}

// Layout carries the metadata shared immutably by every render of a theme.
type Layout struct {
	// Height is the tallest glyph of the theme.
	Height int
	// Spacing is the horizontal gap between adjacent glyphs.
	Spacing int
}

// Theme is a named, immutable set of ten digit glyphs plus layout metadata.
type Theme struct {
	Name   string
	Glyphs [DigitCount]Glyph
	Layout Layout
}

// New assembles a Theme from ten encoded glyph images indexed by digit,
// computing the layout and the per-glyph data URIs.
func New(name string, glyphs [DigitCount]Glyph) *Theme {
	t := &Theme{
		Name:   name,
		Glyphs: glyphs,
	}

	for i := range t.Glyphs {
		g := &t.Glyphs[i]
		g.DataURI = dataURI(g.MIME, g.Data)

		if g.Height > t.Layout.Height {
			t.Layout.Height = g.Height
		}
	}

	return t
}

// Registry resolves theme names to Themes, substituting the default theme for
// unknown names. It is immutable after construction and safe for any number
// of concurrent readers without locking.
type Registry struct {
	fallback *Theme
	themes   map[string]*Theme
}

// NewRegistry builds a Registry over ts with fallback as the default theme
// name. Name matches are case-insensitive.
func NewRegistry(fallback string, ts ...*Theme) (*Registry, error) {
	themes := map[string]*Theme{}

	for _, t := range ts {
		themes[strings.ToLower(t.Name)] = t
	}

	def, ok := themes[strings.ToLower(fallback)]
	if !ok {
		return nil, wrapError(ErrThemeNotFound, "default theme '%s'", fallback)
	}

	return &Registry{
		fallback: def,
		themes:   themes,
	}, nil
}

// Resolve returns the theme for name, or the default theme and resolved=false
// when name is unknown. An unknown theme is a normal, handled case, never an
// error.
func (r *Registry) Resolve(name string) (t *Theme, resolved bool) {
	if t, ok := r.themes[strings.ToLower(name)]; ok {
		return t, true
	}

	return r.fallback, false
}

// Default returns the registry's fallback theme.
func (r *Registry) Default() *Theme {
	return r.fallback
}

// Names lists all registered theme names, sorted.
func (r *Registry) Names() []string {
	ns := make([]string, 0, len(r.themes))
	for n := range r.themes {
		ns = append(ns, n)
	}

	sort.Strings(ns)

	return ns
}

func dataURI(mime string, data []byte) string {
	return "data:" + mime + ";charset=utf-8;base64," + base64.StdEncoding.EncodeToString(data)
}
