package render

import (
	"fmt"
	"strings"

	"github.com/hitbadge/hitbadge/service/theme"
)

const svgHeader = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

// SVGOptions control vector output details.
type SVGOptions struct {
	// Pixelated forces nearest-neighbour scaling, keeping pixel-art glyphs
	// crisp when the badge is displayed larger than its natural size.
	Pixelated bool
	// Title is emitted as the SVG title element, typically the plain count.
	Title string
}

// SVG renders the glyph sequence as vector markup with every glyph embedded
// as a data URI, placed left to right at accumulated offsets.
func SVG(glyphs []theme.Glyph, spacing int, opts SVGOptions) []byte {
	var (
		b      strings.Builder
		images strings.Builder

		width  int
		height int
	)

	for i, g := range glyphs {
		if i > 0 {
			width += spacing
		}

		fmt.Fprintf(
			&images,
			"<image x=\"%d\" y=\"0\" width=\"%d\" height=\"%d\" href=\"%s\" />\n",
			width,
			g.Width,
			g.Height,
			g.DataURI,
		)

		width += g.Width
		if g.Height > height {
			height = g.Height
		}
	}

	b.WriteString(svgHeader)
	fmt.Fprintf(
		&b,
		"<svg width=\"%d\" height=\"%d\" version=\"1.1\" xmlns=\"http://www.w3.org/2000/svg\" xmlns:xlink=\"http://www.w3.org/1999/xlink\"",
		width,
		height,
	)

	if opts.Pixelated {
		b.WriteString(" style='image-rendering: pixelated;'")
	}

	b.WriteString(">\n")

	if opts.Title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", opts.Title)
	}

	fmt.Fprintf(&b, "<g>%s</g>\n", images.String())
	b.WriteString("</svg>")

	return []byte(b.String())
}
