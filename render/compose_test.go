package render

import (
	"testing"

	"github.com/hitbadge/hitbadge/service/theme"
)

func TestCompose(t *testing.T) {
	tm := theme.Builtin()

	for _, tc := range []struct {
		count     uint64
		minLength uint
		want      []int
	}{
		{count: 0, minLength: 0, want: []int{0}},
		{count: 7, minLength: 0, want: []int{7}},
		{count: 7, minLength: 3, want: []int{0, 0, 7}},
		{count: 12345, minLength: 2, want: []int{1, 2, 3, 4, 5}},
		{count: 100, minLength: 3, want: []int{1, 0, 0}},
		{count: 0, minLength: 4, want: []int{0, 0, 0, 0}},
	} {
		gs := Compose(tc.count, tc.minLength, tm)

		if have, want := len(gs), len(tc.want); have != want {
			t.Fatalf("count %d: have %v glyphs, want %v", tc.count, have, want)
		}

		for i, g := range gs {
			if have, want := g.DataURI, tm.Glyphs[tc.want[i]].DataURI; have != want {
				t.Errorf("count %d: glyph %d is not digit %d", tc.count, i, tc.want[i])
			}
		}
	}
}

func TestDecompose(t *testing.T) {
	for _, tc := range []struct {
		count uint64
		want  []int
	}{
		{count: 0, want: []int{0}},
		{count: 9, want: []int{9}},
		{count: 10, want: []int{1, 0}},
		{count: 908, want: []int{9, 0, 8}},
		{count: 18446744073709551615, want: []int{1, 8, 4, 4, 6, 7, 4, 4, 0, 7, 3, 7, 0, 9, 5, 5, 1, 6, 1, 5}},
	} {
		have := decompose(tc.count)

		if len(have) != len(tc.want) {
			t.Fatalf("count %d: have %v, want %v", tc.count, have, tc.want)
		}

		for i := range tc.want {
			if have[i] != tc.want[i] {
				t.Errorf("count %d: have %v, want %v", tc.count, have, tc.want)
			}
		}
	}
}
