package hadith

import (
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const (
	maxTextLength  = 50000
	maxShortLength = 500
)

// CreateInput holds the parameters for creating a content record.
type CreateInput struct {
	// ID defaults to "book:seq".
	ID       string
	Book     string
	SeqNo    string
	Kitab    domain.ChapterRef
	Bab      domain.LocalizedText
	Title    domain.LocalizedText
	Content  domain.LocalizedText
	Chain    domain.LocalizedText
	Footnote domain.LocalizedText
	Grade    domain.LocalizedText
	// Status defaults to pending.
	Status domain.RecordStatus
	Notes  string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Book) == "" {
		errs = append(errs, domain.FieldError{Field: "book", Message: "required"})
	}
	if strings.ContainsRune(i.Book, ':') {
		errs = append(errs, domain.FieldError{Field: "book", Message: "must not contain ':'"})
	}
	if strings.TrimSpace(i.SeqNo) == "" {
		errs = append(errs, domain.FieldError{Field: "seq_no", Message: "required"})
	}
	if i.Content.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "content", Message: "at least one language required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = append(errs, validateText("content", &i.Content, maxTextLength)...)
	errs = append(errs, validateText("chain", &i.Chain, maxTextLength)...)
	errs = append(errs, validateText("footnote", &i.Footnote, maxTextLength)...)
	errs = append(errs, validateText("title", &i.Title, maxShortLength)...)
	errs = append(errs, validateText("bab", &i.Bab, maxShortLength)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateInput) record() domain.ContentRecord {
	book := strings.TrimSpace(i.Book)
	seq := strings.TrimSpace(i.SeqNo)
	id := strings.TrimSpace(i.ID)
	if id == "" {
		id = domain.RecordID(book, seq)
	}
	status := i.Status
	if status == "" {
		status = domain.RecordStatusPending
	}
	return domain.ContentRecord{
		ID:       id,
		Book:     book,
		SeqNo:    seq,
		Kitab:    i.Kitab,
		Bab:      i.Bab,
		Title:    i.Title,
		Content:  i.Content,
		Chain:    i.Chain,
		Footnote: i.Footnote,
		Grade:    i.Grade,
		Status:   status,
		Notes:    i.Notes,
	}
}

// UpdateInput holds the parameters for a partial record update.
// Nil fields are left unchanged; a non-nil text field replaces all languages.
type UpdateInput struct {
	ID        string
	SeqNo     *string
	KitabID   *domain.ChapterID
	KitabName *domain.NameSet
	Bab       *domain.LocalizedText
	Title     *domain.LocalizedText
	Content   *domain.LocalizedText
	Chain     *domain.LocalizedText
	Footnote  *domain.LocalizedText
	Grade     *domain.LocalizedText
	Status    *domain.RecordStatus
	Notes     *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.ID) == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.SeqNo != nil && strings.TrimSpace(*i.SeqNo) == "" {
		errs = append(errs, domain.FieldError{Field: "seq_no", Message: "must not be empty"})
	}
	if i.Content != nil && i.Content.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "content", Message: "at least one language required"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	errs = append(errs, validateText("content", i.Content, maxTextLength)...)
	errs = append(errs, validateText("chain", i.Chain, maxTextLength)...)
	errs = append(errs, validateText("footnote", i.Footnote, maxTextLength)...)
	errs = append(errs, validateText("title", i.Title, maxShortLength)...)
	errs = append(errs, validateText("bab", i.Bab, maxShortLength)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// apply returns rec with every set field of the input applied.
func (i UpdateInput) apply(rec domain.ContentRecord) domain.ContentRecord {
	if i.SeqNo != nil {
		rec.SeqNo = strings.TrimSpace(*i.SeqNo)
	}
	if i.KitabID != nil {
		rec.Kitab.ID = *i.KitabID
	}
	if i.KitabName != nil {
		rec.Kitab.Name = *i.KitabName
	}
	for _, f := range []struct {
		src *domain.LocalizedText
		dst *domain.LocalizedText
	}{
		{i.Bab, &rec.Bab},
		{i.Title, &rec.Title},
		{i.Content, &rec.Content},
		{i.Chain, &rec.Chain},
		{i.Footnote, &rec.Footnote},
		{i.Grade, &rec.Grade},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	if i.Status != nil {
		rec.Status = *i.Status
	}
	if i.Notes != nil {
		rec.Notes = *i.Notes
	}
	return rec
}

func validateText(field string, t *domain.LocalizedText, max int) []domain.FieldError {
	if t == nil {
		return nil
	}
	var errs []domain.FieldError
	for _, v := range []struct{ lang, s string }{{"ar", t.Ar}, {"th", t.Th}, {"en", t.En}} {
		if len(v.s) > max {
			errs = append(errs, domain.FieldError{Field: field + "." + v.lang, Message: "too long"})
		}
	}
	return errs
}
