package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// Result summarizes an import run.
type Result struct {
	Book string `json:"book"`
	DedupeStats
	// Foreign counts rows declaring another book; they are ignored.
	Foreign int `json:"foreign"`
	// Invalid counts rows that could not become records.
	Invalid int `json:"invalid"`
	Created int `json:"created"`
	Updated int `json:"updated"`
	// IndexFailed counts records stored but not sent to the search index.
	IndexFailed int `json:"index_failed"`
}

// Import reads every row, deduplicates the book's rows and upserts the
// resulting records in batches. Deduplication completes before the first
// write, so ErrDuplicateKey aborts the import without storing anything.
// Search indexing is best effort: failures are counted, not returned.
func (s *Service) Import(ctx context.Context, book string, rows RowReader) (*Result, error) {
	book = strings.TrimSpace(book)
	if book == "" {
		return nil, domain.NewValidationError("book", "required")
	}

	status := domain.RecordStatus(s.cfg.DefaultStatus)
	if !status.IsValid() {
		status = domain.RecordStatusPending
	}

	res := &Result{Book: book}
	dedup := NewDeduplicator(book, status, s.cfg.MaxSuffix)
	var recs []domain.ContentRecord

	for {
		row, err := rows.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read rows: %w", err)
		}

		if row.Book != "" && row.Book != book {
			res.Foreign++
			continue
		}
		if reason := row.validate(); reason != "" {
			res.Invalid++
			s.log.WarnContext(ctx, "skipping invalid row",
				slog.String("book", book),
				slog.Int("line", row.Line),
				slog.String("reason", reason),
			)
			continue
		}

		rec, ok, err := dedup.Add(row)
		if err != nil {
			return nil, fmt.Errorf("dedupe line %d: %w", row.Line, err)
		}
		if ok {
			recs = append(recs, rec)
		}
	}
	res.DedupeStats = dedup.Stats()

	s.log.InfoContext(ctx, "rows deduplicated",
		slog.String("book", book),
		slog.Int("kept", res.Kept),
		slog.Int("skipped", res.Skipped),
		slog.Int("disambiguated", res.Disambiguated),
		slog.Int("invalid", res.Invalid),
	)

	batchSize := max(s.cfg.BatchSize, 1)
	for start := 0; start < len(recs); start += batchSize {
		batch := recs[start:min(start+batchSize, len(recs))]

		created, updated, err := s.records.BulkUpsert(ctx, batch)
		res.Created += created
		res.Updated += updated
		if err != nil {
			return res, fmt.Errorf("upsert batch at %d: %w", start, err)
		}

		if s.index != nil {
			if err := s.index.IndexRecords(ctx, batch); err != nil {
				res.IndexFailed += len(batch)
				s.log.WarnContext(ctx, "search indexing failed",
					slog.String("book", book),
					slog.Int("batch_start", start),
					slog.String("error", err.Error()),
				)
			}
		}

		s.log.InfoContext(ctx, "import progress",
			slog.String("book", book),
			slog.Int("stored", start+len(batch)),
			slog.Int("total", len(recs)),
		)
	}

	return res, nil
}

// SliceReader is a RowReader over an in-memory slice.
type SliceReader struct {
	rows []RawRow
	pos  int
}

// NewSliceReader returns a RowReader yielding rows in order.
func NewSliceReader(rows []RawRow) *SliceReader {
	return &SliceReader{rows: rows}
}

func (r *SliceReader) Next() (RawRow, error) {
	if r.pos >= len(r.rows) {
		return RawRow{}, io.EOF
	}
	row := r.rows[r.pos]
	r.pos++
	return row, nil
}
