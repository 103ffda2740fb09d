package theme

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

var mimeByFormat = map[string]string{
	"gif":  "image/gif",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// LoadDir loads every complete theme below dir, expecting the layout
// <dir>/<theme>/<digit>.<ext> with one image per decimal digit. Directories
// missing digits or containing undecodable images are skipped rather than
// failing the whole load.
func LoadDir(dir string) ([]*Theme, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	ts := []*Theme{}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t, err := loadTheme(filepath.Join(dir, entry.Name()), entry.Name())
		if err != nil {
			continue
		}

		ts = append(ts, t)
	}

	return ts, nil
}

func loadTheme(dir, name string) (*Theme, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var (
		glyphs [DigitCount]Glyph
		have   [DigitCount]bool

		seen int
	)

	for _, f := range files {
		if f.IsDir() {
			continue
		}

		stem := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))

		digit, err := strconv.Atoi(stem)
		if err != nil || digit < 0 || digit > 9 || have[digit] {
			continue
		}

		g, err := loadGlyph(filepath.Join(dir, f.Name()))
		if err != nil {
			return nil, err
		}

		glyphs[digit] = g
		have[digit] = true
		seen++
	}

	if seen != DigitCount {
		return nil, wrapError(
			ErrIncompleteTheme,
			"%s has %d of %d digits",
			name,
			seen,
			DigitCount,
		)
	}

	return New(name, glyphs), nil
}

func loadGlyph(path string) (Glyph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Glyph{}, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Glyph{}, err
	}

	mime, ok := mimeByFormat[format]
	if !ok {
		mime = "image/" + format
	}

	b := img.Bounds()

	return Glyph{
		Width:  b.Dx(),
		Height: b.Dy(),
		MIME:   mime,
		Data:   data,
		Image:  img,
	}, nil
}
