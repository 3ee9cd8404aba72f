package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hadith-backend/internal/adapter/postgres"
	"github.com/heartmarshall/hadith-backend/internal/adapter/postgres/kitab"
	"github.com/heartmarshall/hadith-backend/internal/adapter/postgres/record"
	"github.com/heartmarshall/hadith-backend/internal/adapter/search/meili"
	"github.com/heartmarshall/hadith-backend/internal/cache"
	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/domain"
	"github.com/heartmarshall/hadith-backend/internal/service/catalog"
	"github.com/heartmarshall/hadith-backend/internal/service/hadith"
	"github.com/heartmarshall/hadith-backend/internal/service/importer"
	"github.com/heartmarshall/hadith-backend/internal/service/indexer"
	"github.com/heartmarshall/hadith-backend/internal/service/query"
)

// lockNamespace prefixes the advisory lock keys of catalog rebuilds.
const lockNamespace = "catalog"

// searchBackend is everything the services need from the full-text backend.
// It stays a nil interface when search is disabled so that consumers see a
// true nil.
type searchBackend interface {
	Search(ctx context.Context, req domain.SearchRequest) (*domain.SearchResult, error)
	IndexRecords(ctx context.Context, recs []domain.ContentRecord) error
	DeleteRecord(ctx context.Context, id string) error
	ConfigureIndex(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Components holds the wired services shared by the server and the offline
// commands.
type Components struct {
	Pool    *pgxpool.Pool
	Search  searchBackend
	Catalog *catalog.Service
	Query   *query.Service
	Cached  *query.CachedService
	Records *hadith.Service
	Import  *importer.Service
	// Indexer is nil when search is disabled.
	Indexer *indexer.Service
}

// NewComponents connects to the database and wires every service. Callers
// must Close the result.
func NewComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return Wire(pool, cfg, logger), nil
}

// Wire builds the services on top of an existing pool.
func Wire(pool *pgxpool.Pool, cfg *config.Config, logger *slog.Logger) *Components {
	records := record.New(pool)
	kitabs := kitab.New(pool)
	txm := postgres.NewTxManager(pool)

	var search searchBackend
	if cfg.Search.Enabled {
		search = meili.New(logger, cfg.Search)
	} else {
		logger.Warn("full-text search disabled, searches use the database")
	}

	locker := catalog.ChainLocker{
		catalog.NewMemoryLocker(),
		postgres.NewAdvisoryLocker(pool, lockNamespace, logger),
	}

	c := &Components{
		Pool:    pool,
		Search:  search,
		Catalog: catalog.NewService(logger, records, kitabs, txm, locker, cfg.Catalog),
		Query:   query.NewService(logger, records, kitabs, search),
		Records: hadith.NewService(logger, records, search),
		Import:  importer.NewService(logger, records, search, cfg.Import),
	}
	c.Cached = query.NewCachedService(c.Query, cache.New[*query.ListResult](cfg.Cache.Size, cfg.Cache.ListTTL))
	if search != nil {
		c.Indexer = indexer.NewService(logger, records, search, cfg.Search.BatchSize)
	}
	return c
}

// Close releases the database pool.
func (c *Components) Close() {
	c.Pool.Close()
}
