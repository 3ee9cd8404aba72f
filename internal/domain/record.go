package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// LocalizedText is a free-text field carried in the source language and its
// translations.
type LocalizedText struct {
	Ar string `json:"ar,omitempty"`
	Th string `json:"th,omitempty"`
	En string `json:"en,omitempty"`
}

func (t LocalizedText) IsEmpty() bool {
	return t.Ar == "" && t.Th == "" && t.En == ""
}

// ContentRecord is one classified text unit of a book.
type ContentRecord struct {
	ID        string        `json:"id"`
	Book      string        `json:"book"`
	SeqNo     string        `json:"seq_no"`
	Kitab     ChapterRef    `json:"kitab"`
	Bab       LocalizedText `json:"bab"`
	Title     LocalizedText `json:"title"`
	Content   LocalizedText `json:"content"`
	Chain     LocalizedText `json:"chain"`
	Footnote  LocalizedText `json:"footnote"`
	Grade     LocalizedText `json:"grade"`
	Status    RecordStatus  `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SeqSort returns the numeric ordering key of the record's sequence number.
func (r ContentRecord) SeqSort() int64 { return SeqSortKey(r.SeqNo) }

// UnparsedSeqSort is the ordering key of sequence numbers without a leading
// integer. Such records sort after every numbered one.
const UnparsedSeqSort int64 = math.MaxInt64

// SeqSortKey converts a sequence number stored as text into its numeric
// ordering key. Leading digits are used ("12a" sorts as 12), so "10" sorts
// after "2".
func SeqSortKey(seq string) int64 {
	seq = strings.TrimSpace(seq)
	end := 0
	if end < len(seq) && (seq[end] == '-' || seq[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(seq) && seq[end] >= '0' && seq[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return UnparsedSeqSort
	}
	n, err := strconv.ParseInt(seq[:end], 10, 64)
	if err != nil {
		return UnparsedSeqSort
	}
	return n
}

// CompareSeq orders two sequence numbers numerically, falling back to a
// string comparison for equal keys.
func CompareSeq(a, b string) int {
	ka, kb := SeqSortKey(a), SeqSortKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	}
	return strings.Compare(a, b)
}

// RecordID builds the composite identifier "book:seq".
func RecordID(book, seq string) string {
	return book + ":" + strings.TrimSpace(seq)
}

// RecordCursor is a keyset position in (seq_sort, id) order.
type RecordCursor struct {
	SeqSort int64
	ID      string
}

// Before reports whether the cursor sorts strictly before r.
func (c RecordCursor) Before(r ContentRecord) bool {
	s := r.SeqSort()
	return s > c.SeqSort || (s == c.SeqSort && r.ID > c.ID)
}
