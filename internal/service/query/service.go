// Package query serves paginated record listings. Searches go to the
// full-text backend first and fall back to substring matching in the
// primary store when the backend is disabled or fails.
package query

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const (
	DefaultLimit = 15
	MaxLimit     = 100
	// MaxPage keeps (page-1)*limit well inside the offset range.
	MaxPage = 1_000_000

	ProviderSearch   = "meilisearch"
	ProviderDatabase = "postgres"
)

type recordRepo interface {
	GetByID(ctx context.Context, id string) (*domain.ContentRecord, error)
	GetByIDs(ctx context.Context, ids []string) ([]domain.ContentRecord, error)
	Find(ctx context.Context, f domain.RecordFilter, search string, offset, limit int) ([]domain.ContentRecord, error)
	Count(ctx context.Context, f domain.RecordFilter, search string) (int, error)
}

type kitabLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.KitabEntry, error)
	GetByOrder(ctx context.Context, book string, order int) (*domain.KitabEntry, error)
}

type searcher interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
}

// Service answers read queries over content records.
type Service struct {
	records recordRepo
	kitabs  kitabLookup
	search  searcher
	log     *slog.Logger
}

// NewService creates a new query service. search may be nil, in which case
// every search is served by the primary store.
func NewService(log *slog.Logger, records recordRepo, kitabs kitabLookup, search searcher) *Service {
	return &Service{
		records: records,
		kitabs:  kitabs,
		search:  search,
		log:     log.With("service", "query"),
	}
}

// NormalizeListQuery trims the query and clamps paging: page defaults to 1,
// limit to DefaultLimit and never exceeds MaxLimit.
func NormalizeListQuery(q domain.ListQuery) domain.ListQuery {
	q.Book = strings.TrimSpace(q.Book)
	q.Kitab = strings.TrimSpace(q.Kitab)
	q.Search = strings.TrimSpace(q.Search)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}
