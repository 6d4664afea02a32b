package health

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Check is a self-test run on every health request. It returns the number of
// chart specs that built and validated.
type Check func() (int, error)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Check Check
	Log   *zap.Logger
}

// NewHandler constructs a health Handler. A nil check uses ChartsCheck.
func NewHandler(check Check, logger *zap.Logger) *Handler {
	if check == nil {
		check = ChartsCheck
	}
	return &Handler{Check: check, Log: logger}
}

// ChartsCheck builds and validates every chart in the catalog.
func ChartsCheck() (int, error) {
	n := 0
	for _, name := range charts.Names() {
		spec, err := charts.Build(name)
		if err != nil {
			return n, err
		}
		if err := spec.Validate(); err != nil {
			return n, fmt.Errorf("chart %s: %w", name, err)
		}
		n++
	}
	return n, nil
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Charts  int    `json:"charts"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "charts":9 }
//
// On self-check failure: 503 and
//
//	{ "status":"error", "message":"Self-check failed", "error":"…"}
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Ping(), h.Log, "health self-check")
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	var n int
	err := timeouts.Run(ctx, func() error {
		var err error
		n, err = h.Check()
		return err
	})
	if err != nil {
		h.Log.Error("health-check: self-check failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:  "error",
			Message: "Self-check failed",
			Error:   err.Error(),
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Charts: n})
}
