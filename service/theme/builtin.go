package theme

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
)

// BuiltinName is the name of the always-available fallback theme.
const BuiltinName = "sevenseg"

// Builtin glyph geometry.
const (
	builtinWidth  = 16
	builtinHeight = 28
	builtinStroke = 3
	builtinMargin = 2
)

var (
	builtinBackground = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	builtinSegment    = color.RGBA{R: 0x39, G: 0xd3, B: 0x53, A: 0xff}
)

// Lit segments per digit: A top, B upper right, C lower right, D bottom,
// E lower left, F upper left, G middle.
var builtinSegments = [DigitCount][7]bool{
	{true, true, true, true, true, true, false},
	{false, true, true, false, false, false, false},
	{true, true, false, true, true, false, true},
	{true, true, true, true, false, false, true},
	{false, true, true, false, false, true, true},
	{true, false, true, true, false, true, true},
	{true, false, true, true, true, true, true},
	{true, true, true, false, false, false, false},
	{true, true, true, true, true, true, true},
	{true, true, true, true, false, true, true},
}

// Builtin renders the seven-segment fallback theme. The glyphs are generated
// in memory, so the service always has one complete theme independent of the
// assets on disk.
func Builtin() *Theme {
	var glyphs [DigitCount]Glyph

	for d := 0; d < DigitCount; d++ {
		glyphs[d] = builtinGlyph(d)
	}

	return New(BuiltinName, glyphs)
}

func builtinGlyph(digit int) Glyph {
	img := image.NewRGBA(image.Rect(0, 0, builtinWidth, builtinHeight))

	draw.Draw(
		img,
		img.Bounds(),
		image.NewUniform(builtinBackground),
		image.Point{},
		draw.Src,
	)

	on := image.NewUniform(builtinSegment)

	for i, lit := range builtinSegments[digit] {
		if !lit {
			continue
		}

		draw.Draw(img, segmentRect(i), on, image.Point{}, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}

	return Glyph{
		Width:  builtinWidth,
		Height: builtinHeight,
		MIME:   "image/png",
		Data:   buf.Bytes(),
		Image:  img,
	}
}

func segmentRect(segment int) image.Rectangle {
	var (
		m = builtinMargin
		s = builtinStroke
		w = builtinWidth
		h = builtinHeight

		mid = h / 2
	)

	switch segment {
	case 0: // A
		return image.Rect(m+s, m, w-m-s, m+s)
	case 1: // B
		return image.Rect(w-m-s, m, w-m, mid)
	case 2: // C
		return image.Rect(w-m-s, mid, w-m, h-m)
	case 3: // D
		return image.Rect(m+s, h-m-s, w-m-s, h-m)
	case 4: // E
		return image.Rect(m, mid, m+s, h-m)
	case 5: // F
		return image.Rect(m, m, m+s, mid)
	default: // G
		return image.Rect(m+s, mid-s/2, w-m-s, mid-s/2+s)
	}
}
