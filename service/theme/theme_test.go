package theme

import (
	"strings"
	"testing"
)

func TestBuiltin(t *testing.T) {
	b := Builtin()

	if have, want := b.Name, BuiltinName; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	if have, want := b.Layout.Height, builtinHeight; have != want {
		t.Errorf("have %v, want %v", have, want)
	}

	for d, g := range b.Glyphs {
		if len(g.Data) == 0 {
			t.Errorf("digit %d missing data", d)
		}

		if g.Image == nil {
			t.Errorf("digit %d missing image", d)
		}

		if !strings.HasPrefix(g.DataURI, "data:image/png;charset=utf-8;base64,") {
			t.Errorf("digit %d has malformed data URI %q", d, g.DataURI)
		}
	}
}

func TestNewRegistryMissingDefault(t *testing.T) {
	_, err := NewRegistry("nonexistent", Builtin())
	if !IsThemeNotFound(err) {
		t.Errorf("have %v, want %v", err, ErrThemeNotFound)
	}
}

func TestRegistryResolve(t *testing.T) {
	r, err := NewRegistry(BuiltinName, Builtin())
	if err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		BuiltinName,
		"SEVENSEG",
		"SevenSeg",
	} {
		resolved, ok := r.Resolve(name)
		if !ok {
			t.Errorf("%q did not resolve", name)
		}

		if have, want := resolved.Name, BuiltinName; have != want {
			t.Errorf("have %v, want %v", have, want)
		}
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	r, err := NewRegistry(BuiltinName, Builtin())
	if err != nil {
		t.Fatal(err)
	}

	resolved, ok := r.Resolve("nonexistent")
	if ok {
		t.Error("unknown theme resolved")
	}

	if have, want := resolved.Name, BuiltinName; have != want {
		t.Errorf("have %v, want %v", have, want)
	}
}

func TestRegistryNames(t *testing.T) {
	sub := New("zebra", Builtin().Glyphs)

	r, err := NewRegistry(BuiltinName, Builtin(), sub)
	if err != nil {
		t.Fatal(err)
	}

	have := r.Names()
	want := []string{BuiltinName, "zebra"}

	if len(have) != len(want) {
		t.Fatalf("have %v, want %v", have, want)
	}

	for i := range want {
		if have[i] != want[i] {
			t.Errorf("have %v, want %v", have, want)
		}
	}
}
