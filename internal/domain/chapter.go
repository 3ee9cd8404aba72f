package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ChapterIDKind tells which variant a ChapterID holds.
type ChapterIDKind uint8

const (
	ChapterIDNone ChapterIDKind = iota
	ChapterIDNumeric
	ChapterIDText
)

// ChapterID is the chapter identifier embedded in content records. Source data
// carries it either as a number or as free text, so it is a tagged variant
// rather than a plain string.
type ChapterID struct {
	kind ChapterIDKind
	num  int64
	text string
}

// NumericChapterID returns the Numeric(n) variant.
func NumericChapterID(n int64) ChapterID {
	return ChapterID{kind: ChapterIDNumeric, num: n}
}

// TextChapterID returns the Text(s) variant. An empty string yields the zero id.
func TextChapterID(s string) ChapterID {
	s = strings.TrimSpace(s)
	if s == "" {
		return ChapterID{}
	}
	return ChapterID{kind: ChapterIDText, text: s}
}

// ParseChapterID interprets a raw import value: integers become Numeric,
// any other non-blank value becomes Text.
func ParseChapterID(raw string) ChapterID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ChapterID{}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return NumericChapterID(n)
	}
	return TextChapterID(raw)
}

func (c ChapterID) Kind() ChapterIDKind { return c.kind }

func (c ChapterID) IsZero() bool { return c.kind == ChapterIDNone }

// Numeric returns the numeric value. For a Text id holding an integer
// literal the parsed value is returned as well.
func (c ChapterID) Numeric() (int64, bool) {
	switch c.kind {
	case ChapterIDNumeric:
		return c.num, true
	case ChapterIDText:
		n, err := strconv.ParseInt(c.text, 10, 64)
		return n, err == nil
	}
	return 0, false
}

// Text returns the raw text of a Text id.
func (c ChapterID) Text() (string, bool) {
	if c.kind != ChapterIDText {
		return "", false
	}
	return c.text, true
}

func (c ChapterID) String() string {
	switch c.kind {
	case ChapterIDNumeric:
		return strconv.FormatInt(c.num, 10)
	case ChapterIDText:
		return c.text
	}
	return ""
}

// Key is the grouping key of the id. Numeric(5) and Text("5") share a key
// because they name the same chapter.
func (c ChapterID) Key() string {
	if c.IsZero() {
		return ""
	}
	return "id:" + c.String()
}

// Equal reports whether both ids denote the same chapter.
func (c ChapterID) Equal(o ChapterID) bool {
	return c.Key() == o.Key()
}

func (c ChapterID) MarshalJSON() ([]byte, error) {
	switch c.kind {
	case ChapterIDNumeric:
		return []byte(strconv.FormatInt(c.num, 10)), nil
	case ChapterIDText:
		return json.Marshal(c.text)
	}
	return []byte("null"), nil
}

func (c *ChapterID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ChapterID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("chapter id: %w", err)
		}
		*c = TextChapterID(s)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("chapter id: %w", err)
	}
	*c = NumericChapterID(n)
	return nil
}

// NameSet holds a chapter name in the source (Arabic), display (Thai) and
// secondary (English) languages.
type NameSet struct {
	Ar string `json:"ar"`
	Th string `json:"th"`
	En string `json:"en"`
}

func (n NameSet) IsEmpty() bool {
	return strings.TrimSpace(n.Ar) == "" && strings.TrimSpace(n.Th) == "" && strings.TrimSpace(n.En) == ""
}

// Key returns the normalized identity of the name set: the first non-empty
// of Ar, Th, En after NormalizeTitle.
func (n NameSet) Key() string {
	for _, s := range []string{n.Ar, n.Th, n.En} {
		if k := NormalizeTitle(s); k != "" {
			return k
		}
	}
	return ""
}

// FillFrom copies fields of o into empty fields of n.
func (n *NameSet) FillFrom(o NameSet) {
	if n.Ar == "" {
		n.Ar = o.Ar
	}
	if n.Th == "" {
		n.Th = o.Th
	}
	if n.En == "" {
		n.En = o.En
	}
}

// Overlay returns n with every non-empty field of o applied on top.
func (n NameSet) Overlay(o NameSet) NameSet {
	if o.Ar != "" {
		n.Ar = o.Ar
	}
	if o.Th != "" {
		n.Th = o.Th
	}
	if o.En != "" {
		n.En = o.En
	}
	return n
}

// Values returns the non-empty names.
func (n NameSet) Values() []string {
	out := make([]string, 0, 3)
	for _, s := range []string{n.Ar, n.Th, n.En} {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ChapterRef is the chapter copy embedded in every content record.
type ChapterRef struct {
	ID   ChapterID `json:"id"`
	Name NameSet   `json:"name"`
}

// GroupKey returns the key records are grouped by during reconciliation:
// the chapter id when present, otherwise the normalized name.
func (r ChapterRef) GroupKey() string {
	if !r.ID.IsZero() {
		return r.ID.Key()
	}
	if k := r.Name.Key(); k != "" {
		return "name:" + k
	}
	return ""
}
