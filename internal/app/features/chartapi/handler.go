// internal/app/features/chartapi/handler.go
package chartapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	metricsstore "github.com/dalemusser/propertypulse/internal/app/store/metrics"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler serves chart images, chart specifications and derived metrics.
type Handler struct {
	Renderer charts.Renderer
	ErrLog   *errorsfeature.ErrorLogger
	Log      *zap.Logger
}

func NewHandler(renderer charts.Renderer, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Renderer: renderer,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// ServeSVG handles GET /charts/{file}, where file is "<name>.svg".
func (h *Handler) ServeSVG(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(chi.URLParam(r, "file"), ".svg")
	if !ok {
		errorsfeature.RenderNotFound(w, r, "Charts are served as .svg.")
		return
	}
	spec, err := charts.Build(name)
	if errors.Is(err, charts.ErrUnknownChart) {
		errorsfeature.RenderNotFound(w, r, "Unknown chart.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build chart failed", err, "Could not build the chart.", "/")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Render(), h.Log, "render chart "+name)
	defer cancel()

	var buf bytes.Buffer
	if err := timeouts.Run(ctx, func() error { return h.Renderer.SVG(&buf, spec) }); err != nil {
		h.ErrLog.LogServerError(w, r, "render chart failed", err, "Could not render the chart.", "/")
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_, _ = w.Write(buf.Bytes())
}

// ServeSpec handles GET /api/charts/{name}.
func (h *Handler) ServeSpec(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	spec, err := charts.Build(name)
	if errors.Is(err, charts.ErrUnknownChart) {
		http.Error(w, "unknown chart", http.StatusNotFound)
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "build chart failed", err, "Could not build the chart.", "/")
		return
	}
	writeJSON(w, h.Log, spec)
}

// ServeIndex handles GET /api/charts and lists the chart names.
func (h *Handler) ServeIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Log, map[string]any{"charts": charts.Names()})
}

// ServeMetrics handles GET /api/metrics. Figures that cannot be computed
// are null.
func (h *Handler) ServeMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Log, metricsstore.FetchDerived())
}

func writeJSON(w http.ResponseWriter, log *zap.Logger, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error("JSON encode failed", zap.Error(err))
	}
}
