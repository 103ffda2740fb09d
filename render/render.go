// Package render turns counts into badge images. Composition and rendering
// are pure: identical inputs produce byte-identical output.
package render

import (
	"image"
	"image/png"
	"io"
	"strings"
	"sync"
)

// Format identifies the target image encoding of a badge.
type Format string

// Supported formats. WebP ships no encoder of its own; codecs are external
// collaborators plugged in through RegisterEncoder.
const (
	FormatPNG  Format = "png"
	FormatSVG  Format = "svg"
	FormatWebP Format = "webp"
)

// FormatDefault is served when the requested format is unknown or has no
// registered encoder.
const FormatDefault = FormatSVG

var mimes = map[Format]string{
	FormatPNG:  "image/png",
	FormatSVG:  "image/svg+xml",
	FormatWebP: "image/webp",
}

// MIME returns the content type served for f.
func (f Format) MIME() string {
	return mimes[f]
}

// ParseFormat maps s to a supported Format. Matching is case-insensitive;
// unknown values yield FormatDefault and parsed=false.
func ParseFormat(s string) (f Format, parsed bool) {
	f = Format(strings.ToLower(s))

	if _, ok := mimes[f]; ok {
		return f, true
	}

	return FormatDefault, false
}

// Encoder writes a composed raster image in a specific format.
type Encoder func(io.Writer, image.Image) error

var (
	encodersMu sync.RWMutex
	encoders   = map[Format]Encoder{}
)

// RegisterEncoder makes enc available for raster rendering of format f.
func RegisterEncoder(f Format, enc Encoder) {
	encodersMu.Lock()
	defer encodersMu.Unlock()

	encoders[f] = enc
}

func encoderFor(f Format) (Encoder, bool) {
	encodersMu.RLock()
	defer encodersMu.RUnlock()

	enc, ok := encoders[f]

	return enc, ok
}

func init() {
	RegisterEncoder(FormatPNG, png.Encode)
}
