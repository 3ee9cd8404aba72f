// Package catalog keeps the canonical chapter catalog of each book in sync
// with the chapter copies embedded in content records.
//
// The catalog and the records are not updated in one transaction: a rebuild
// derives the catalog from records, and a rename is written to the catalog
// first and then propagated to records in batches. A failure between the two
// leaves records with the old names until the rename or a book sync is
// repeated; both are safe to re-run.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

type recordRepo interface {
	ScanBook(ctx context.Context, book string, after *domain.RecordCursor, limit int) ([]domain.ContentRecord, error)
	CountMatching(ctx context.Context, m domain.ChapterMatch) (int, error)
	RenameChapterBatch(ctx context.Context, m domain.ChapterMatch, names domain.NameSet, limit int) (int, error)
}

type kitabRepo interface {
	ListByBook(ctx context.Context, book string) ([]domain.KitabEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KitabEntry, error)
	MaxOrder(ctx context.Context, book string) (int, error)
	Create(ctx context.Context, e domain.KitabEntry) (*domain.KitabEntry, error)
	Update(ctx context.Context, e domain.KitabEntry) (*domain.KitabEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceBook(ctx context.Context, book string, entries []domain.KitabEntry) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker grants per-key mutual exclusion without waiting.
type Locker interface {
	TryLock(ctx context.Context, key string) (unlock func(), ok bool, err error)
}

// Service provides catalog reconciliation, rename propagation and catalog
// administration.
type Service struct {
	records recordRepo
	kitabs  kitabRepo
	tx      txManager
	locker  Locker
	cfg     config.CatalogConfig
	log     *slog.Logger
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	kitabs kitabRepo,
	tx txManager,
	locker Locker,
	cfg config.CatalogConfig,
) *Service {
	if cfg.ScanBatchSize <= 0 {
		cfg.ScanBatchSize = 1000
	}
	if cfg.PropagationBatchSize <= 0 {
		cfg.PropagationBatchSize = 500
	}
	return &Service{
		records: records,
		kitabs:  kitabs,
		tx:      tx,
		locker:  locker,
		cfg:     cfg,
		log:     log.With("service", "catalog"),
	}
}
