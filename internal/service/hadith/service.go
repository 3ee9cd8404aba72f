// Package hadith provides administrative writes on single content records.
package hadith

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordRepo interface {
	GetByID(ctx context.Context, id string) (*domain.ContentRecord, error)
	Create(ctx context.Context, rec domain.ContentRecord) (*domain.ContentRecord, error)
	Update(ctx context.Context, rec domain.ContentRecord) (*domain.ContentRecord, error)
	Delete(ctx context.Context, id string) error
}

type searchIndex interface {
	IndexRecords(ctx context.Context, recs []domain.ContentRecord) error
	DeleteRecord(ctx context.Context, id string) error
}

// Service writes content records and mirrors them into the search index.
// Index failures are logged and never fail the write.
type Service struct {
	records recordRepo
	index   searchIndex
	log     *slog.Logger
}

// NewService creates a new record service. index may be nil.
func NewService(log *slog.Logger, records recordRepo, index searchIndex) *Service {
	return &Service{
		records: records,
		index:   index,
		log:     log.With("service", "hadith"),
	}
}
