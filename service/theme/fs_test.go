package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	writeTheme(t, dir, "complete", DigitCount)

	ts, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := len(ts), 1; have != want {
		t.Fatalf("have %v, want %v", have, want)
	}

	loaded := ts[0]

	if have, want := loaded.Name, "complete"; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if have, want := loaded.Layout.Height, builtinHeight; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	for d, g := range loaded.Glyphs {
		if have, want := g.MIME, "image/png"; have != want {
			t.Errorf("digit %d: have %v, want %v", d, have, want)
		}

		if g.DataURI == "" {
			t.Errorf("digit %d missing data URI", d)
		}
	}
}

func TestLoadDirIncomplete(t *testing.T) {
	dir := t.TempDir()

	writeTheme(t, dir, "partial", 7)

	ts, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	if have, want := len(ts), 0; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestLoadDirMissing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "void")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestLoadThemeIncomplete(t *testing.T) {
	dir := t.TempDir()

	writeTheme(t, dir, "partial", 4)

	_, err := loadTheme(filepath.Join(dir, "partial"), "partial")
	if !IsIncompleteTheme(err) {
		t.Errorf("have %v, want %v", err, ErrIncompleteTheme)
	}
}

// writeTheme lays out the first digits of the builtin glyph set as
// <dir>/<name>/<digit>.png.
func writeTheme(t *testing.T, dir, name string, digits int) {
	t.Helper()

	b := Builtin()

	td := filepath.Join(dir, name)
	if err := os.MkdirAll(td, 0755); err != nil {
		t.Fatal(err)
	}

	for d := 0; d < digits; d++ {
		p := filepath.Join(td, fmt.Sprintf("%d.png", d))

		if err := os.WriteFile(p, b.Glyphs[d].Data, 0644); err != nil {
			t.Fatal(err)
		}
	}
}
