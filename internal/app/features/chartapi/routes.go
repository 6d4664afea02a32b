// internal/app/features/chartapi/routes.go
package chartapi

import (
	"github.com/go-chi/chi/v5"
)

// Routes serves chart images; mount at "/charts".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{file}", h.ServeSVG)
	return r
}

// APIRoutes serves the JSON endpoints; mount at "/api".
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/charts", h.ServeIndex)
	r.Get("/charts/{name}", h.ServeSpec)
	r.Get("/metrics", h.ServeMetrics)
	return r
}
