package errors_test

import (
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/propertypulse/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRenderNotFound_PlainForAPI(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/charts/nope", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	uierrors.RenderNotFound(rec, req, "unknown chart")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "unknown chart") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRenderNotFound_HTML(t *testing.T) {
	req := httptest.NewRequest("GET", "/nowhere", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	// Template rendering may panic without an initialized engine.
	func() {
		defer func() { _ = recover() }()
		uierrors.NewHandler().NotFound(rec, req)
	}()

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestLogServerError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	errLog := uierrors.NewErrorLogger(zap.New(core))

	req := httptest.NewRequest("GET", "/charts/roi.svg", nil)
	rec := httptest.NewRecorder()
	errLog.LogServerError(rec, req, "render chart failed", stderrors.New("boom"), "Chart unavailable.", "")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Chart unavailable.") {
		t.Errorf("body = %q", rec.Body.String())
	}
	entries := logs.FilterMessage("render chart failed").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d entries, want 1", len(entries))
	}
	if got := entries[0].ContextMap()["path"]; got != "/charts/roi.svg" {
		t.Errorf("path field = %v", got)
	}
}

func TestNewErrorLogger_NilLogger(t *testing.T) {
	if uierrors.NewErrorLogger(nil).Log == nil {
		t.Error("expected a no-op logger")
	}
}
