package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/app/system/selection"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SessionKey is a fixed 32-byte key for test cookie stores.
const SessionKey = "0123456789abcdef0123456789abcdef"

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// NewSelectionStore returns a widget store with the stock defaults.
func NewSelectionStore(t *testing.T) *selection.Store {
	t.Helper()
	s, err := selection.NewStore(selection.Options{
		Key: SessionKey,
		Defaults: selection.Defaults{
			Tab:     models.DefaultTab,
			Horizon: inputval.Horizon.Default,
		},
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("selection.NewStore: %v", err)
	}
	return s
}
