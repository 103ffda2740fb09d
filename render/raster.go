package render

import (
	"bytes"
	"image"
	"image/draw"

	"github.com/hitbadge/hitbadge/service/theme"
)

// Raster composes the glyph sequence into a single image, glyphs lined up
// left to right on a transparent canvas sized to the sequence.
func Raster(glyphs []theme.Glyph, spacing int) image.Image {
	var (
		width  int
		height int
	)

	for i, g := range glyphs {
		if i > 0 {
			width += spacing
		}

		width += g.Width
		if g.Height > height {
			height = g.Height
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width, height))

	x := 0
	for _, g := range glyphs {
		r := image.Rect(x, 0, x+g.Width, g.Height)
		draw.Draw(canvas, r, g.Image, g.Image.Bounds().Min, draw.Src)

		x += g.Width + spacing
	}

	return canvas
}

// Encode renders glyphs in the requested format and reports the format
// actually served. A format without a registered encoder falls back to
// FormatDefault rather than failing the request.
func Encode(
	glyphs []theme.Glyph,
	spacing int,
	f Format,
	opts SVGOptions,
) ([]byte, Format, error) {
	if f != FormatSVG {
		if enc, ok := encoderFor(f); ok {
			var buf bytes.Buffer

			if err := enc(&buf, Raster(glyphs, spacing)); err != nil {
				return nil, f, err
			}

			return buf.Bytes(), f, nil
		}

		f = FormatDefault
	}

	return SVG(glyphs, spacing, opts), FormatSVG, nil
}
