package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const maxNameLength = 500

// CreateEntryInput holds the parameters for creating a catalog entry.
type CreateEntryInput struct {
	Book string
	// Order is the position in the book; 0 appends after the last entry.
	Order int
	Name  domain.NameSet
}

// Validate checks all fields and collects all errors.
func (i CreateEntryInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Book) == "" {
		errs = append(errs, domain.FieldError{Field: "book", Message: "required"})
	}
	if i.Order < 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be positive"})
	}
	if i.Name.IsEmpty() {
		errs = append(errs, domain.FieldError{Field: "name", Message: "at least one language required"})
	}
	errs = append(errs, validateNames(i.Name.Ar, i.Name.Th, i.Name.En)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateEntryInput holds the parameters for updating a catalog entry.
// Nil fields are left unchanged.
type UpdateEntryInput struct {
	ID    uuid.UUID
	Order *int
	Ar    *string
	Th    *string
	En    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateEntryInput) Validate() error {
	var errs []domain.FieldError

	if i.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if i.Order == nil && i.Ar == nil && i.Th == nil && i.En == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Order != nil && *i.Order <= 0 {
		errs = append(errs, domain.FieldError{Field: "order", Message: "must be positive"})
	}
	errs = append(errs, validateNames(deref(i.Ar), deref(i.Th), deref(i.En))...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateNames(ar, th, en string) []domain.FieldError {
	var errs []domain.FieldError
	for field, v := range map[string]string{"name.ar": ar, "name.th": th, "name.en": en} {
		if len(v) > maxNameLength {
			errs = append(errs, domain.FieldError{Field: field, Message: "max 500 characters"})
		}
	}
	return errs
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func trimNames(n domain.NameSet) domain.NameSet {
	return domain.NameSet{
		Ar: strings.TrimSpace(n.Ar),
		Th: strings.TrimSpace(n.Th),
		En: strings.TrimSpace(n.En),
	}
}
