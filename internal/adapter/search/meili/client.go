// Package meili adapts the Meilisearch full-text backend. Every error it
// returns wraps domain.ErrBackendUnavailable so callers can fall back to the
// primary store.
package meili

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/meilisearch/meilisearch-go"

	"github.com/heartmarshall/hadith-backend/internal/config"
	"github.com/heartmarshall/hadith-backend/internal/domain"
)

// index is the subset of *meilisearch.Index used by the adapter.
type index interface {
	Search(query string, request *meilisearch.SearchRequest) (*meilisearch.SearchResponse, error)
	AddDocuments(documentsPtr interface{}, primaryKey ...string) (*meilisearch.TaskInfo, error)
	DeleteDocument(identifier string) (*meilisearch.TaskInfo, error)
	UpdateSettings(request *meilisearch.Settings) (*meilisearch.TaskInfo, error)
}

type healthChecker interface {
	Health() (*meilisearch.Health, error)
}

// Client searches and maintains the record index.
type Client struct {
	index  index
	health healthChecker
	log    *slog.Logger
}

// New creates a Client for the configured host and index.
func New(logger *slog.Logger, cfg config.SearchConfig) *Client {
	mc := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:    cfg.Host,
		APIKey:  cfg.APIKey,
		Timeout: cfg.Timeout,
	})
	return &Client{
		index:  mc.Index(cfg.Index),
		health: mc,
		log:    logger.With("adapter", "meili", "index", cfg.Index),
	}
}

// Search runs a ranked full-text query restricted by the structural filter.
func (c *Client) Search(_ context.Context, req domain.SearchRequest) (*domain.SearchResult, error) {
	sr := &meilisearch.SearchRequest{
		Offset:                int64(req.Offset),
		Limit:                 int64(req.Limit),
		AttributesToHighlight: highlightAttributes,
	}
	if f := buildFilter(req.Filter); f != "" {
		sr.Filter = f
	}

	resp, err := c.index.Search(req.Query, sr)
	if err != nil {
		return nil, fmt.Errorf("%w: search: %w", domain.ErrBackendUnavailable, err)
	}

	hits := make([]domain.SearchHit, 0, len(resp.Hits))
	for _, raw := range resp.Hits {
		hit, ok := parseHit(raw)
		if !ok {
			c.log.Warn("skipping malformed hit")
			continue
		}
		hits = append(hits, hit)
	}

	return &domain.SearchResult{
		Hits:           hits,
		EstimatedTotal: int(resp.EstimatedTotalHits),
	}, nil
}

// IndexRecords upserts records into the index. The call returns once the
// backend accepted the task; indexing itself is asynchronous.
func (c *Client) IndexRecords(_ context.Context, recs []domain.ContentRecord) error {
	if len(recs) == 0 {
		return nil
	}
	docs := make([]document, len(recs))
	for i, r := range recs {
		docs[i] = toDocument(r)
	}
	if _, err := c.index.AddDocuments(docs, primaryKey); err != nil {
		return fmt.Errorf("%w: add documents: %w", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// DeleteRecord removes a record from the index.
func (c *Client) DeleteRecord(_ context.Context, id string) error {
	if _, err := c.index.DeleteDocument(DocumentID(id)); err != nil {
		return fmt.Errorf("%w: delete document: %w", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// ConfigureIndex applies searchable, filterable and sortable attributes and
// typo tolerance settings.
func (c *Client) ConfigureIndex(_ context.Context) error {
	if _, err := c.index.UpdateSettings(indexSettings()); err != nil {
		return fmt.Errorf("%w: update settings: %w", domain.ErrBackendUnavailable, err)
	}
	return nil
}

// Ping reports whether the backend is reachable and healthy.
func (c *Client) Ping(_ context.Context) error {
	h, err := c.health.Health()
	if err != nil {
		return fmt.Errorf("%w: health: %w", domain.ErrBackendUnavailable, err)
	}
	if h.Status != "available" {
		return fmt.Errorf("%w: status %q", domain.ErrBackendUnavailable, h.Status)
	}
	return nil
}
