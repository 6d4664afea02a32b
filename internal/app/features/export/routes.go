// internal/app/features/export/routes.go
package export

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the dataset downloads; mount at "/export".
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/{file}", h.ServeDataset)
	return r
}
