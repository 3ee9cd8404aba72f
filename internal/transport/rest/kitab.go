package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/hadith-backend/internal/domain"
	"github.com/heartmarshall/hadith-backend/internal/service/catalog"
	"github.com/heartmarshall/hadith-backend/internal/service/indexer"
)

type catalogService interface {
	ListEntries(ctx context.Context, book string) (*catalog.EntryList, error)
	GetEntry(ctx context.Context, id uuid.UUID) (*domain.KitabEntry, error)
	CreateEntry(ctx context.Context, input catalog.CreateEntryInput) (*domain.KitabEntry, error)
	UpdateEntry(ctx context.Context, input catalog.UpdateEntryInput) (*catalog.UpdateEntryResult, error)
	DeleteEntry(ctx context.Context, id uuid.UUID) error
	Rebuild(ctx context.Context, book string) (*catalog.RebuildResult, error)
	SyncBook(ctx context.Context, book string) (*catalog.SyncResult, error)
}

type reindexer interface {
	Reindex(ctx context.Context, books ...string) (*indexer.Result, error)
}

// KitabHandler serves catalog endpoints and search index maintenance.
type KitabHandler struct {
	catalog catalogService
	index   reindexer
	log     *slog.Logger
}

// NewKitabHandler creates a KitabHandler. index may be nil when the
// full-text backend is disabled.
func NewKitabHandler(catalog catalogService, index reindexer, logger *slog.Logger) *KitabHandler {
	return &KitabHandler{
		catalog: catalog,
		index:   index,
		log:     logger.With("handler", "kitab"),
	}
}

// List returns the catalog of a book.
// GET /api/kitabs/{book}
func (h *KitabHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.catalog.ListEntries(r.Context(), r.PathValue("book"))
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Get returns a single catalog entry.
// GET /api/kitab/{id}
func (h *KitabHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	entry, err := h.catalog.GetEntry(r.Context(), id)
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

// Rebuild reconciles the catalog of a book with its records.
// POST /api/admin/kitabs/{book}/rebuild
func (h *KitabHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalog.Rebuild(r.Context(), r.PathValue("book"))
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Sync pushes every catalog name of a book into its records.
// POST /api/admin/kitabs/{book}/sync
func (h *KitabHandler) Sync(w http.ResponseWriter, r *http.Request) {
	res, err := h.catalog.SyncBook(r.Context(), r.PathValue("book"))
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type createEntryRequest struct {
	Book  string         `json:"book"`
	Order int            `json:"order"`
	Name  domain.NameSet `json:"name"`
}

// Create adds a catalog entry.
// POST /api/admin/kitabs
func (h *KitabHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	entry, err := h.catalog.CreateEntry(r.Context(), catalog.CreateEntryInput{
		Book:  req.Book,
		Order: req.Order,
		Name:  req.Name,
	})
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}

type updateEntryRequest struct {
	Order *int `json:"order"`
	Name  struct {
		Ar *string `json:"ar"`
		Th *string `json:"th"`
		En *string `json:"en"`
	} `json:"name"`
}

// Update changes an entry and propagates renamed chapters to records.
// PUT /api/admin/kitab/{id}
func (h *KitabHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	var req updateEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	res, err := h.catalog.UpdateEntry(r.Context(), catalog.UpdateEntryInput{
		ID:    id,
		Order: req.Order,
		Ar:    req.Name.Ar,
		Th:    req.Name.Th,
		En:    req.Name.En,
	})
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Delete removes a catalog entry. Records keep their embedded chapter.
// DELETE /api/admin/kitab/{id}
func (h *KitabHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.entryID(w, r)
	if !ok {
		return
	}
	if err := h.catalog.DeleteEntry(r.Context(), id); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type reindexRequest struct {
	Books []string `json:"books"`
}

// Reindex rebuilds the full-text index for the given books, or all books
// when none are given.
// POST /api/admin/search/reindex
func (h *KitabHandler) Reindex(w http.ResponseWriter, r *http.Request) {
	if h.index == nil {
		writeError(w, http.StatusServiceUnavailable, "search backend disabled")
		return
	}

	var req reindexRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeServiceError(r.Context(), h.log, w, err)
			return
		}
	}

	res, err := h.index.Reindex(r.Context(), req.Books...)
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	h.log.InfoContext(r.Context(), "search index rebuilt",
		slog.Int("books", res.Books),
		slog.Int("indexed", res.Indexed),
	)
	writeJSON(w, http.StatusOK, res)
}

func (h *KitabHandler) entryID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), h.log, w, domain.NewValidationError("id", "must be a uuid"))
		return uuid.Nil, false
	}
	return id, true
}
