package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/hadith-backend/internal/domain"
	"github.com/heartmarshall/hadith-backend/internal/service/hadith"
	"github.com/heartmarshall/hadith-backend/internal/service/query"
	"github.com/heartmarshall/hadith-backend/internal/transport/middleware"
)

type recordLister interface {
	List(ctx context.Context, q domain.ListQuery) (*query.ListResult, bool, error)
}

type recordGetter interface {
	Get(ctx context.Context, id string) (*domain.ContentRecord, error)
}

type recordAdmin interface {
	Create(ctx context.Context, input hadith.CreateInput) (*domain.ContentRecord, error)
	Update(ctx context.Context, input hadith.UpdateInput) (*domain.ContentRecord, error)
	Delete(ctx context.Context, id string) error
}

// HadithHandler serves content record endpoints.
type HadithHandler struct {
	list  recordLister
	get   recordGetter
	admin recordAdmin
	log   *slog.Logger
}

// NewHadithHandler creates a HadithHandler.
func NewHadithHandler(list recordLister, get recordGetter, admin recordAdmin, logger *slog.Logger) *HadithHandler {
	return &HadithHandler{
		list:  list,
		get:   get,
		admin: admin,
		log:   logger.With("handler", "hadith"),
	}
}

// List returns a page of records.
// GET /api/hadiths?page=&limit=&search=&book=&status=&kitab=&kitab_by_id=
// GET /api/hadiths/{book}
func (h *HadithHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r)
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	res, hit, err := h.list.List(r.Context(), q)
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	if hit {
		w.Header().Set(middleware.CacheHeader, "HIT")
	} else {
		w.Header().Set(middleware.CacheHeader, "MISS")
	}
	writeJSON(w, http.StatusOK, res)
}

func parseListQuery(r *http.Request) (domain.ListQuery, error) {
	v := r.URL.Query()
	q := domain.ListQuery{
		Book:   v.Get("book"),
		Status: domain.RecordStatus(v.Get("status")),
		Kitab:  v.Get("kitab"),
		Search: v.Get("search"),
	}
	if book := r.PathValue("book"); book != "" {
		q.Book = book
	}

	var errs []domain.FieldError
	if s := v.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "page", Message: "must be an integer"})
		}
		q.Page = n
	}
	if s := v.Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "limit", Message: "must be an integer"})
		}
		q.Limit = n
	}
	if s := v.Get("kitab_by_id"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "kitab_by_id", Message: "must be a boolean"})
		}
		q.KitabByID = b
	}
	if len(errs) > 0 {
		return domain.ListQuery{}, domain.NewValidationErrors(errs)
	}
	return q, nil
}

// Get returns a single record.
// GET /api/hadith/{id}
func (h *HadithHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, err := h.get.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// ---------------------------------------------------------------------------
// Admin
// ---------------------------------------------------------------------------

type createRecordRequest struct {
	ID       string               `json:"id"`
	Book     string               `json:"book"`
	SeqNo    string               `json:"seq_no"`
	Kitab    domain.ChapterRef    `json:"kitab"`
	Bab      domain.LocalizedText `json:"bab"`
	Title    domain.LocalizedText `json:"title"`
	Content  domain.LocalizedText `json:"content"`
	Chain    domain.LocalizedText `json:"chain"`
	Footnote domain.LocalizedText `json:"footnote"`
	Grade    domain.LocalizedText `json:"grade"`
	Status   domain.RecordStatus  `json:"status"`
	Notes    string               `json:"notes"`
}

// Create adds a record.
// POST /api/admin/hadiths
func (h *HadithHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	rec, err := h.admin.Create(r.Context(), hadith.CreateInput{
		ID:       strings.TrimSpace(req.ID),
		Book:     strings.TrimSpace(req.Book),
		SeqNo:    strings.TrimSpace(req.SeqNo),
		Kitab:    req.Kitab,
		Bab:      req.Bab,
		Title:    req.Title,
		Content:  req.Content,
		Chain:    req.Chain,
		Footnote: req.Footnote,
		Grade:    req.Grade,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

type updateRecordRequest struct {
	SeqNo *string `json:"seq_no"`
	Kitab *struct {
		ID   *domain.ChapterID `json:"id"`
		Name *domain.NameSet   `json:"name"`
	} `json:"kitab"`
	Bab      *domain.LocalizedText `json:"bab"`
	Title    *domain.LocalizedText `json:"title"`
	Content  *domain.LocalizedText `json:"content"`
	Chain    *domain.LocalizedText `json:"chain"`
	Footnote *domain.LocalizedText `json:"footnote"`
	Grade    *domain.LocalizedText `json:"grade"`
	Status   *domain.RecordStatus  `json:"status"`
	Notes    *string               `json:"notes"`
}

// Update partially updates a record.
// PUT /api/admin/hadith/{id}
func (h *HadithHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateRecordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}

	input := hadith.UpdateInput{
		ID:       r.PathValue("id"),
		SeqNo:    req.SeqNo,
		Bab:      req.Bab,
		Title:    req.Title,
		Content:  req.Content,
		Chain:    req.Chain,
		Footnote: req.Footnote,
		Grade:    req.Grade,
		Status:   req.Status,
		Notes:    req.Notes,
	}
	if req.Kitab != nil {
		input.KitabID = req.Kitab.ID
		input.KitabName = req.Kitab.Name
	}

	rec, err := h.admin.Update(r.Context(), input)
	if err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Delete removes a record.
// DELETE /api/admin/hadith/{id}
func (h *HadithHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.admin.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(r.Context(), h.log, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
