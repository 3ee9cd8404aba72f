// Package indexer rebuilds the full-text index from the primary store.
package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const (
	defaultBatchSize = 1000
	// bookParallelism bounds how many books are indexed at once.
	bookParallelism = 4
)

type recordRepo interface {
	Books(ctx context.Context) ([]string, error)
	ScanBook(ctx context.Context, book string, after *domain.RecordCursor, limit int) ([]domain.ContentRecord, error)
}

type searchIndex interface {
	ConfigureIndex(ctx context.Context) error
	IndexRecords(ctx context.Context, recs []domain.ContentRecord) error
}

// Service pushes every record into the search index.
type Service struct {
	records   recordRepo
	index     searchIndex
	batchSize int
	log       *slog.Logger
}

// NewService creates a new indexer. Non-positive batchSize uses 1000.
func NewService(log *slog.Logger, records recordRepo, index searchIndex, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Service{
		records:   records,
		index:     index,
		batchSize: batchSize,
		log:       log.With("service", "indexer"),
	}
}

// Result summarizes a reindex run.
type Result struct {
	Books   int `json:"books"`
	Indexed int `json:"indexed"`
	Batches int `json:"batches"`
}

// Reindex applies the index settings and then sends all records of the
// given books, or of every book when none are given, in batches. The first
// failure stops the run; documents already sent stay indexed.
func (s *Service) Reindex(ctx context.Context, books ...string) (*Result, error) {
	if err := s.index.ConfigureIndex(ctx); err != nil {
		return nil, fmt.Errorf("configure index: %w", err)
	}

	if len(books) == 0 {
		var err error
		books, err = s.records.Books(ctx)
		if err != nil {
			return nil, fmt.Errorf("list books: %w", err)
		}
	}

	var indexed, batches atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bookParallelism)
	for _, book := range books {
		g.Go(func() error {
			n, b, err := s.indexBook(gctx, book)
			indexed.Add(int64(n))
			batches.Add(int64(b))
			return err
		})
	}
	err := g.Wait()

	res := &Result{Books: len(books), Indexed: int(indexed.Load()), Batches: int(batches.Load())}
	if err != nil {
		return res, err
	}

	s.log.InfoContext(ctx, "reindex complete",
		slog.Int("books", res.Books),
		slog.Int("indexed", res.Indexed),
		slog.Int("batches", res.Batches),
	)
	return res, nil
}

func (s *Service) indexBook(ctx context.Context, book string) (indexed, batches int, err error) {
	var cursor *domain.RecordCursor
	for {
		batch, err := s.records.ScanBook(ctx, book, cursor, s.batchSize)
		if err != nil {
			return indexed, batches, fmt.Errorf("scan %s: %w", book, err)
		}
		if len(batch) == 0 {
			break
		}
		if err := s.index.IndexRecords(ctx, batch); err != nil {
			return indexed, batches, fmt.Errorf("index %s batch %d: %w", book, batches+1, err)
		}
		indexed += len(batch)
		batches++

		s.log.DebugContext(ctx, "reindex progress",
			slog.String("book", book),
			slog.Int("indexed", indexed),
		)

		if len(batch) < s.batchSize {
			break
		}
		last := batch[len(batch)-1]
		cursor = &domain.RecordCursor{SeqSort: last.SeqSort(), ID: last.ID}
	}
	return indexed, batches, nil
}
