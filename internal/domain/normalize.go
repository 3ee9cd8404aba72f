package domain

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningMarks lists the combining diacritics removed during title
// normalization: the generic combining blocks plus Arabic harakat.
// Thai vowel and tone marks are not included; they are part of the spelling.
var combiningMarks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0300, Hi: 0x036f, Stride: 1},
		{Lo: 0x064b, Hi: 0x065f, Stride: 1},
		{Lo: 0x0670, Hi: 0x0670, Stride: 1},
		{Lo: 0x06d6, Hi: 0x06dc, Stride: 1},
		{Lo: 0x06df, Hi: 0x06e4, Stride: 1},
		{Lo: 0x06e7, Hi: 0x06e8, Stride: 1},
		{Lo: 0x06ea, Hi: 0x06ed, Stride: 1},
		{Lo: 0x1ab0, Hi: 0x1aff, Stride: 1},
		{Lo: 0x1dc0, Hi: 0x1dff, Stride: 1},
		{Lo: 0x20d0, Hi: 0x20ff, Stride: 1},
		{Lo: 0xfe20, Hi: 0xfe2f, Stride: 1},
	},
}

// NormalizeTitle canonicalizes a chapter title for identity comparison:
//   - Unicode canonical decomposition (NFD)
//   - combining diacritical marks removed
//   - leading/trailing whitespace trimmed
//
// Case and inner whitespace are preserved. The function is idempotent.
func NormalizeTitle(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningMarks)))
	out, _, err := transform.String(t, s)
	if err != nil {
		// Only reachable on invalid transformer state; fall back to trimming.
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(out)
}

// MatchTitle returns the first reference whose normalized form equals the
// normalized candidate. There is no fuzzy fallback: an unmatched candidate
// must be resolved manually.
func MatchTitle(candidate string, refs []string) (string, bool) {
	key := NormalizeTitle(candidate)
	if key == "" {
		return "", false
	}
	for _, ref := range refs {
		if NormalizeTitle(ref) == key {
			return ref, true
		}
	}
	return "", false
}

// TitleIndex maps normalized titles to values of type V. Two distinct values
// registered under one key make that key ambiguous.
type TitleIndex[V comparable] struct {
	byKey     map[string]V
	ambiguous map[string]struct{}
}

// NewTitleIndex creates an empty index.
func NewTitleIndex[V comparable]() *TitleIndex[V] {
	return &TitleIndex[V]{
		byKey:     make(map[string]V),
		ambiguous: make(map[string]struct{}),
	}
}

// Add registers v under the normalized title. Empty titles are ignored.
func (ix *TitleIndex[V]) Add(title string, v V) {
	key := NormalizeTitle(title)
	if key == "" {
		return
	}
	if prev, ok := ix.byKey[key]; ok && prev != v {
		ix.ambiguous[key] = struct{}{}
		return
	}
	ix.byKey[key] = v
}

// Lookup returns the value registered under the normalized title.
// It returns ErrNotFound when nothing matches and ErrMatchAmbiguous when
// more than one value was registered under the key.
func (ix *TitleIndex[V]) Lookup(title string) (V, error) {
	var zero V
	key := NormalizeTitle(title)
	if _, bad := ix.ambiguous[key]; bad {
		return zero, fmt.Errorf("title %q: %w", title, ErrMatchAmbiguous)
	}
	v, ok := ix.byKey[key]
	if !ok || key == "" {
		return zero, fmt.Errorf("title %q: %w", title, ErrNotFound)
	}
	return v, nil
}

// Len returns the number of distinct normalized keys.
func (ix *TitleIndex[V]) Len() int { return len(ix.byKey) }
