// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point the
// top-level router chooses (e.g., "/dashboard").
//
// The handler dispatches to the tab view named by the path, falling back to
// the query string and then to the remembered selection.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeDashboard)
	r.Get("/{tab}", h.ServeDashboard)

	// Calculator partials are posted by HTMX from the Energy and Financial tabs.
	r.Post("/energy/calculator", h.ServeEnergyCalculator)
	r.Post("/financial/calculator", h.ServeImplementationCalculator)

	return r
}
