package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// EntryList is the catalog of a book. Derived is set when the book has no
// stored catalog and the entries were computed from its records.
type EntryList struct {
	Book    string              `json:"book"`
	Entries []domain.KitabEntry `json:"entries"`
	Derived bool                `json:"derived"`
}

// ListEntries returns the catalog of book ordered by order. A book without a
// stored catalog gets one derived from its records, without ids.
func (s *Service) ListEntries(ctx context.Context, book string) (*EntryList, error) {
	entries, err := s.kitabs.ListByBook(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	if len(entries) > 0 {
		return &EntryList{Book: book, Entries: entries}, nil
	}

	scan, err := s.scanGroups(ctx, book)
	if err != nil {
		return nil, err
	}
	plan := planCatalog(book, scan.groups, nil)
	if plan.entries == nil {
		plan.entries = []domain.KitabEntry{}
	}
	return &EntryList{Book: book, Entries: plan.entries, Derived: true}, nil
}

// GetEntry returns a catalog entry by id.
func (s *Service) GetEntry(ctx context.Context, id uuid.UUID) (*domain.KitabEntry, error) {
	e, err := s.kitabs.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}
	return e, nil
}

// CreateEntry adds a catalog entry. An order already used in the book is
// reported as domain.ErrAlreadyExists.
func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.KitabEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	book := strings.TrimSpace(input.Book)

	var created *domain.KitabEntry
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		order := input.Order
		if order == 0 {
			maxOrder, err := s.kitabs.MaxOrder(txCtx, book)
			if err != nil {
				return fmt.Errorf("max order: %w", err)
			}
			order = maxOrder + 1
		}

		var err error
		created, err = s.kitabs.Create(txCtx, domain.KitabEntry{
			Book:  book,
			Order: order,
			Name:  trimNames(input.Name),
		})
		if err != nil {
			return fmt.Errorf("create catalog entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "catalog entry created",
		slog.String("book", book),
		slog.String("entry_id", created.ID.String()),
		slog.Int("order", created.Order),
	)
	return created, nil
}

// UpdateEntryResult is the outcome of an entry update.
type UpdateEntryResult struct {
	Entry *domain.KitabEntry `json:"entry"`
	// Propagation is set when names changed.
	Propagation *PropagationResult `json:"propagation,omitempty"`
}

// UpdateEntry changes the order and/or names of an entry. After a name change
// the entry's full name set is propagated to the records linked to its
// previous identity.
// A propagation failure does not undo the catalog write; it is reported in
// the result.
func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*UpdateEntryResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	old, err := s.kitabs.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}

	next := *old
	if input.Order != nil {
		next.Order = *input.Order
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&next.Name.Ar, input.Ar)
	apply(&next.Name.Th, input.Th)
	apply(&next.Name.En, input.En)

	if next.Order == old.Order && next.Name == old.Name {
		return &UpdateEntryResult{Entry: old}, nil
	}

	updated, err := s.kitabs.Update(ctx, next)
	if err != nil {
		return nil, fmt.Errorf("update catalog entry: %w", err)
	}

	s.log.InfoContext(ctx, "catalog entry updated",
		slog.String("book", updated.Book),
		slog.String("entry_id", updated.ID.String()),
		slog.Int("order", updated.Order),
	)

	res := &UpdateEntryResult{Entry: updated}
	if next.Name == old.Name {
		return res, nil
	}

	prop, err := s.Propagate(ctx, old.Book, old.Identity(), updated.Name)
	if err != nil {
		s.log.ErrorContext(ctx, "rename propagation failed",
			slog.String("book", old.Book),
			slog.String("entry_id", old.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	res.Propagation = prop
	return res, nil
}

// DeleteEntry removes a catalog entry. Records keep their chapter copy.
func (s *Service) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	if err := s.kitabs.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete catalog entry: %w", err)
	}
	s.log.InfoContext(ctx, "catalog entry deleted", slog.String("entry_id", id.String()))
	return nil
}

// SyncResult summarizes a book sync.
type SyncResult struct {
	Book     string              `json:"book"`
	Entries  int                 `json:"entries"`
	Modified int                 `json:"modified"`
	Unlinked int                 `json:"unlinked"`
	Failed   int                 `json:"failed"`
	Results  []PropagationResult `json:"results"`
}

// SyncBook pushes the names of every catalog entry of book onto the records
// carrying the entry's order as chapter id. Entries are processed one by
// one; a failing entry is reported and the sync continues.
func (s *Service) SyncBook(ctx context.Context, book string) (*SyncResult, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return nil, domain.NewValidationError("book", "required")
	}

	entries, err := s.kitabs.ListByBook(ctx, book)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	res := &SyncResult{Book: book, Entries: len(entries), Results: make([]PropagationResult, 0, len(entries))}
	for _, e := range entries {
		prop, err := s.Propagate(ctx, book, domain.ChapterIdentity{Order: e.Order}, e.Name)
		if err != nil {
			res.Failed++
			s.log.ErrorContext(ctx, "sync entry failed",
				slog.String("book", book),
				slog.Int("order", e.Order),
				slog.String("error", err.Error()),
			)
		}
		if prop.Unlinked {
			res.Unlinked++
		}
		res.Modified += prop.Modified
		res.Results = append(res.Results, *prop)
	}

	s.log.InfoContext(ctx, "catalog synced",
		slog.String("book", book),
		slog.Int("entries", res.Entries),
		slog.Int("modified", res.Modified),
		slog.Int("failed", res.Failed),
	)
	return res, nil
}
