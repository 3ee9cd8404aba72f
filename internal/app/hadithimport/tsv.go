// Package hadithimport reads tab-separated hadith exports and drives the
// offline import. Parsing has no database dependencies.
package hadithimport

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
	"github.com/heartmarshall/hadith-backend/internal/service/importer"
)

// Column names of the export header.
const (
	colNum        = "num"
	colBookAlias  = "book_alias"
	colChapterID  = "h1"
	colChapterAr  = "h1_title"
	colChapterEn  = "h1_title_en"
	colBabAr      = "h2_title"
	colBabEn      = "h2_title_en"
	colBody       = "body"
	colBodyEn     = "body_en"
	colChain      = "chain"
	colGrade      = "grade_grade"
	colGradeEn    = "grade_grade_en"
	colStatus     = "status"
	colBodyTh     = "body_th"
	colChapterTh  = "h1_title_th"
	colFootnote   = "footnote"
	colFootnoteTh = "footnote_th"
)

var requiredColumns = []string{colNum, colBody}

// Reader yields importer rows from a TSV export with a header line.
// Quotes are taken literally and rows may be short; missing cells are empty.
type Reader struct {
	csv  *csv.Reader
	cols map[string]int
	line int
}

// NewReader reads the header from r and returns a Reader positioned at the
// first data row.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := cols[name]; !dup {
			cols[name] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("read header: missing column %q", c)
		}
	}

	return &Reader{csv: cr, cols: cols, line: 1}, nil
}

// Next returns the next non-blank row, or io.EOF.
func (r *Reader) Next() (importer.RawRow, error) {
	for {
		rec, err := r.csv.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return importer.RawRow{}, io.EOF
			}
			return importer.RawRow{}, fmt.Errorf("after line %d: %w", r.line, err)
		}
		r.line, _ = r.csv.FieldPos(0)
		if blank(rec) {
			continue
		}
		return r.toRow(rec), nil
	}
}

func (r *Reader) toRow(rec []string) importer.RawRow {
	get := func(col string) string {
		i, ok := r.cols[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	return importer.RawRow{
		Line:  r.line,
		Book:  get(colBookAlias),
		SeqNo: get(colNum),
		Kitab: domain.ChapterRef{
			ID:   domain.ParseChapterID(get(colChapterID)),
			Name: domain.NameSet{Ar: get(colChapterAr), Th: get(colChapterTh), En: get(colChapterEn)},
		},
		Bab:      domain.LocalizedText{Ar: get(colBabAr), En: get(colBabEn)},
		Content:  domain.LocalizedText{Ar: get(colBody), Th: get(colBodyTh), En: get(colBodyEn)},
		Chain:    domain.LocalizedText{Ar: get(colChain)},
		Footnote: domain.LocalizedText{Ar: get(colFootnote), Th: get(colFootnoteTh)},
		Grade:    domain.LocalizedText{Ar: get(colGrade), En: get(colGradeEn)},
		Status:   domain.RecordStatus(get(colStatus)),
	}
}

func blank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
