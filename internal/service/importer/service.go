// Package importer loads raw source rows of a book into content records.
package importer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

type recordRepo interface {
	BulkUpsert(ctx context.Context, recs []domain.ContentRecord) (created, updated int, err error)
}

type searchIndexer interface {
	IndexRecords(ctx context.Context, recs []domain.ContentRecord) error
}

// RowReader yields parsed rows in source order. Next returns io.EOF after
// the last row.
type RowReader interface {
	Next() (RawRow, error)
}

// Service imports rows into the primary store and the search index.
type Service struct {
	records recordRepo
	index   searchIndexer
	cfg     config.ImportConfig
	log     *slog.Logger
}

// NewService creates a new import service. index may be nil when full-text
// search is disabled.
func NewService(log *slog.Logger, records recordRepo, index searchIndexer, cfg config.ImportConfig) *Service {
	return &Service{
		records: records,
		index:   index,
		cfg:     cfg,
		log:     log.With("service", "importer"),
	}
}
