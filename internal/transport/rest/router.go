package rest

import (
	"net/http"

	"github.com/heartmarshall/hadith-backend/internal/transport/middleware"
)

// Handlers groups the endpoint handlers mounted by NewRouter.
type Handlers struct {
	Health *HealthHandler
	Hadith *HadithHandler
	Kitab  *KitabHandler
}

// NewRouter mounts every route on a ServeMux and wraps it with mw.
// Admin routes additionally require an admin bearer token.
func NewRouter(h Handlers, mw ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /api/hadiths", h.Hadith.List)
	mux.HandleFunc("GET /api/hadiths/{book}", h.Hadith.List)
	mux.HandleFunc("GET /api/hadith/{id}", h.Hadith.Get)
	mux.HandleFunc("GET /api/kitabs/{book}", h.Kitab.List)
	mux.HandleFunc("GET /api/kitab/{id}", h.Kitab.Get)

	admin := middleware.Middleware(middleware.AdminOnly)
	mux.Handle("POST /api/admin/kitabs/{book}/rebuild", admin.Then(h.Kitab.Rebuild))
	mux.Handle("POST /api/admin/kitabs/{book}/sync", admin.Then(h.Kitab.Sync))
	mux.Handle("POST /api/admin/kitabs", admin.Then(h.Kitab.Create))
	mux.Handle("PUT /api/admin/kitab/{id}", admin.Then(h.Kitab.Update))
	mux.Handle("DELETE /api/admin/kitab/{id}", admin.Then(h.Kitab.Delete))
	mux.Handle("POST /api/admin/hadiths", admin.Then(h.Hadith.Create))
	mux.Handle("PUT /api/admin/hadith/{id}", admin.Then(h.Hadith.Update))
	mux.Handle("DELETE /api/admin/hadith/{id}", admin.Then(h.Hadith.Delete))
	mux.Handle("POST /api/admin/search/reindex", admin.Then(h.Kitab.Reindex))

	return middleware.Chain(mw...)(mux)
}
