package hadith

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// Create stores a new record and indexes it. Returns domain.ErrAlreadyExists
// when the id is taken.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.ContentRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.records.Create(ctx, input.record())
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "record created",
		slog.String("record_id", created.ID),
		slog.String("book", created.Book),
	)
	s.reindex(ctx, *created)
	return created, nil
}

// Update applies a partial update to the record with the given id.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.ContentRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.records.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	updated, err := s.records.Update(ctx, input.apply(*current))
	if err != nil {
		return nil, fmt.Errorf("update record: %w", err)
	}

	s.log.InfoContext(ctx, "record updated", slog.String("record_id", updated.ID))
	s.reindex(ctx, *updated)
	return updated, nil
}

// Delete removes a record and its index document.
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.NewValidationError("id", "required")
	}
	if err := s.records.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.InfoContext(ctx, "record deleted", slog.String("record_id", id))

	if s.index == nil {
		return nil
	}
	if err := s.index.DeleteRecord(ctx, id); err != nil {
		s.log.WarnContext(ctx, "search index delete failed",
			slog.String("record_id", id),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

func (s *Service) reindex(ctx context.Context, rec domain.ContentRecord) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexRecords(ctx, []domain.ContentRecord{rec}); err != nil {
		s.log.WarnContext(ctx, "search index update failed",
			slog.String("record_id", rec.ID),
			slog.String("error", err.Error()),
		)
	}
}
