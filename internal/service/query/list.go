package query

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// ListResult is one page of records.
type ListResult struct {
	Records []domain.ContentRecord `json:"data"`
	// Highlights maps record id to highlighted field snippets. Only the
	// full-text backend produces them.
	Highlights map[string]map[string]string `json:"highlights,omitempty"`
	Total      int                          `json:"total"`
	Page       int                          `json:"page"`
	Limit      int                          `json:"limit"`
	TotalPages int                          `json:"total_pages"`
	// IsEstimate is set when Total is the backend's estimate.
	IsEstimate bool   `json:"is_estimate"`
	Provider   string `json:"provider"`
}

func newListResult(q domain.ListQuery, records []domain.ContentRecord, total int) *ListResult {
	if records == nil {
		records = []domain.ContentRecord{}
	}
	pages := 0
	if total > 0 {
		pages = (total + q.Limit - 1) / q.Limit
	}
	return &ListResult{
		Records:    records,
		Total:      total,
		Page:       q.Page,
		Limit:      q.Limit,
		TotalPages: pages,
		Provider:   ProviderDatabase,
	}
}

// List returns a page of records matching q in ascending sequence order, or
// in relevance order when the full-text backend served a search. Backend
// failures are never returned; the primary store answers instead.
func (s *Service) List(ctx context.Context, q domain.ListQuery) (*ListResult, error) {
	q = NormalizeListQuery(q)
	if q.Status != "" && !q.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of pending, translated, published")
	}
	if q.Page > MaxPage {
		return nil, domain.NewValidationError("page", fmt.Sprintf("must not exceed %d", MaxPage))
	}

	filter, ok, err := s.resolveFilter(ctx, q)
	if err != nil {
		return nil, err
	}
	if !ok {
		return newListResult(q, nil, 0), nil
	}

	offset := (q.Page - 1) * q.Limit

	if q.Search != "" && s.search != nil {
		res, err := s.searchBackend(ctx, q, filter, offset)
		if err == nil {
			return res, nil
		}
		s.log.WarnContext(ctx, "search backend failed, using database",
			slog.String("search", q.Search),
			slog.String("error", err.Error()),
		)
	}

	return s.searchDatabase(ctx, q, filter, offset)
}

// resolveFilter turns q into a store filter. ok is false when the query
// names a catalog entry that does not exist, so nothing can match.
func (s *Service) resolveFilter(ctx context.Context, q domain.ListQuery) (domain.RecordFilter, bool, error) {
	f := domain.RecordFilter{Book: q.Book, Status: q.Status}
	if q.Kitab == "" {
		return f, true, nil
	}
	if !q.KitabByID {
		f.KitabNames = []string{q.Kitab}
		return f, true, nil
	}

	entry, err := s.lookupKitab(ctx, q.Book, q.Kitab)
	if errors.Is(err, domain.ErrNotFound) {
		return f, false, nil
	}
	if err != nil {
		return f, false, err
	}

	f.KitabNames = entry.Name.Values()
	if len(f.KitabNames) == 0 {
		return f, false, nil
	}
	if f.Book == "" {
		f.Book = entry.Book
	}
	return f, true, nil
}

// lookupKitab accepts either a catalog entry uuid or an order within book.
func (s *Service) lookupKitab(ctx context.Context, book, ref string) (*domain.KitabEntry, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return s.kitabs.GetByID(ctx, id)
	}
	order, err := strconv.Atoi(ref)
	if err != nil || order <= 0 {
		return nil, domain.NewValidationError("kitab", "must be a catalog entry id or order")
	}
	if book == "" {
		return nil, domain.NewValidationError("book", "required when kitab is an order")
	}
	return s.kitabs.GetByOrder(ctx, book, order)
}

func (s *Service) searchBackend(ctx context.Context, q domain.ListQuery, f domain.RecordFilter, offset int) (*ListResult, error) {
	found, err := s.search.Search(ctx, domain.SearchRequest{
		Query:  q.Search,
		Filter: f,
		Offset: offset,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(found.Hits))
	for i, h := range found.Hits {
		ids[i] = h.ID
	}

	var records []domain.ContentRecord
	if len(ids) > 0 {
		records, err = s.records.GetByIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("load search hits: %w", err)
		}
	}

	res := newListResult(q, records, found.EstimatedTotal)
	res.IsEstimate = true
	res.Provider = ProviderSearch
	for _, h := range found.Hits {
		if len(h.Highlights) == 0 {
			continue
		}
		if res.Highlights == nil {
			res.Highlights = make(map[string]map[string]string, len(found.Hits))
		}
		res.Highlights[h.ID] = h.Highlights
	}
	return res, nil
}

func (s *Service) searchDatabase(ctx context.Context, q domain.ListQuery, f domain.RecordFilter, offset int) (*ListResult, error) {
	var (
		records []domain.ContentRecord
		total   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.records.Find(gctx, f, q.Search, offset, q.Limit)
		if err != nil {
			return fmt.Errorf("find records: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		total, err = s.records.Count(gctx, f, q.Search)
		if err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return newListResult(q, records, total), nil
}

// Get returns a single record by its composite id.
func (s *Service) Get(ctx context.Context, id string) (*domain.ContentRecord, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}
	rec, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}
