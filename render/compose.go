package render

import (
	"github.com/hitbadge/hitbadge/service/theme"
)

// Compose decomposes count into decimal digits, most significant first, and
// maps every digit to its theme glyph. Sequences shorter than minLength are
// left-padded with the zero glyph; longer counts keep all their digits, so
// minLength is a floor, never a truncation bound. The result is never empty.
func Compose(count uint64, minLength uint, t *theme.Theme) []theme.Glyph {
	digits := decompose(count)

	if pad := int(minLength) - len(digits); pad > 0 {
		digits = append(make([]int, pad), digits...)
	}

	gs := make([]theme.Glyph, 0, len(digits))
	for _, d := range digits {
		gs = append(gs, t.Glyphs[d])
	}

	return gs
}

func decompose(count uint64) []int {
	if count == 0 {
		return []int{0}
	}

	ds := []int{}

	for count > 0 {
		ds = append(ds, int(count%10))
		count /= 10
	}

	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}

	return ds
}
