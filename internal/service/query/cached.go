package query

import (
	"context"

	"github.com/heartmarshall/hadith-backend/internal/cache"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

const listCachePrefix = "hadiths"

// Lister is the uncached listing operation.
type Lister interface {
	List(ctx context.Context, q domain.ListQuery) (*ListResult, error)
}

// CachedService memoizes List results for the cache TTL. Writes do not
// invalidate entries.
type CachedService struct {
	next  Lister
	cache *cache.Cache[*ListResult]
}

// NewCachedService wraps next with c.
func NewCachedService(next Lister, c *cache.Cache[*ListResult]) *CachedService {
	return &CachedService{next: next, cache: c}
}

// List returns the cached result for q when present. hit reports whether
// the cache answered. Errors are not cached.
func (s *CachedService) List(ctx context.Context, q domain.ListQuery) (res *ListResult, hit bool, err error) {
	q = NormalizeListQuery(q)
	key := cache.Key(listCachePrefix, q.Params())

	if res, ok := s.cache.Get(key); ok {
		return res, true, nil
	}

	res, err = s.next.List(ctx, q)
	if err != nil {
		return nil, false, err
	}
	s.cache.Set(key, res)
	return res, false, nil
}
