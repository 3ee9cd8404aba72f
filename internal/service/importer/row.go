package importer

import (
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// RawRow is one parsed import row before deduplication.
type RawRow struct {
	// Line is the 1-based source line, used in logs.
	Line int
	// Book is the book code the source row declares.
	Book     string
	SeqNo    string
	Kitab    domain.ChapterRef
	Bab      domain.LocalizedText
	Title    domain.LocalizedText
	Content  domain.LocalizedText
	Chain    domain.LocalizedText
	Footnote domain.LocalizedText
	Grade    domain.LocalizedText
	Status   domain.RecordStatus
}

// body is the text used for the duplicate fingerprint: the source-language
// content, or the translation when the source is missing.
func (r RawRow) body() string {
	if r.Content.Ar != "" {
		return r.Content.Ar
	}
	return r.Content.Th
}

func (r RawRow) toRecord(book, id string, defaultStatus domain.RecordStatus) domain.ContentRecord {
	status := r.Status
	if status == "" {
		status = defaultStatus
	}
	return domain.ContentRecord{
		ID:       id,
		Book:     book,
		SeqNo:    strings.TrimSpace(r.SeqNo),
		Kitab:    r.Kitab,
		Bab:      r.Bab,
		Title:    r.Title,
		Content:  r.Content,
		Chain:    r.Chain,
		Footnote: r.Footnote,
		Grade:    r.Grade,
		Status:   status,
	}
}

// validate reports why a row cannot become a record, or "".
func (r RawRow) validate() string {
	switch {
	case strings.TrimSpace(r.SeqNo) == "":
		return "missing sequence number"
	case strings.TrimSpace(r.body()) == "":
		return "empty body"
	case r.Status != "" && !r.Status.IsValid():
		return "invalid status"
	}
	return ""
}
