package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/propertypulse/internal/testutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		SiteName:       models.DefaultSiteName,
		CompanyName:    "Columbus Capital",
		SessionKey:     testutil.SessionKey,
		SessionName:    "propertypulse-widgets",
		ChartWidth:     800,
		ChartHeight:    420,
		DefaultTab:     models.TabOverview,
		DefaultHorizon: 5,
	}
}

func TestValidateConfig(t *testing.T) {
	dev := &config.CoreConfig{Env: "dev"}
	prod := &config.CoreConfig{Env: "prod"}

	tests := []struct {
		name    string
		core    *config.CoreConfig
		mutate  func(*AppConfig)
		wantErr bool
	}{
		{"valid", dev, func(*AppConfig) {}, false},
		{"zero chart width", dev, func(c *AppConfig) { c.ChartWidth = 0 }, true},
		{"negative chart height", dev, func(c *AppConfig) { c.ChartHeight = -1 }, true},
		{"unknown tab", dev, func(c *AppConfig) { c.DefaultTab = "Leasing" }, true},
		{"horizon too small", dev, func(c *AppConfig) { c.DefaultHorizon = 0 }, true},
		{"horizon too large", dev, func(c *AppConfig) { c.DefaultHorizon = 11 }, true},
		{"negative rate limit", dev, func(c *AppConfig) { c.RateLimit = -1 }, true},
		{"short key in dev", dev, func(c *AppConfig) { c.SessionKey = "short" }, false},
		{"short key in prod", prod, func(c *AppConfig) { c.SessionKey = "short" }, true},
		{"default key in dev", dev, func(c *AppConfig) { c.SessionKey = devSessionKey }, false},
		{"default key in prod", prod, func(c *AppConfig) { c.SessionKey = devSessionKey }, true},
		{"bad csrf key in prod", prod, func(c *AppConfig) { c.CSRFKey = "abc" }, true},
		{"valid prod", prod, func(*AppConfig) {}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(tt.core, cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCSRFKey(t *testing.T) {
	cfg := validAppConfig()
	if got := len(csrfKey(cfg)); got != 32 {
		t.Errorf("derived key length = %d, want 32", got)
	}

	cfg.CSRFKey = "abcdefghijklmnopqrstuvwxyz012345"
	if got := string(csrfKey(cfg)); got != cfg.CSRFKey {
		t.Errorf("configured key not used: %q", got)
	}
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h, err := newRouter(validAppConfig(), nil, false, testLogger())
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}
	return h
}

func TestRouter_JSONAndAssets(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		path        string
		status      int
		contentType string
	}{
		{"/health", http.StatusOK, "application/json"},
		{"/api/metrics", http.StatusOK, "application/json"},
		{"/api/charts", http.StatusOK, "application/json"},
		{"/api/charts/roi", http.StatusOK, "application/json"},
		{"/api/charts/unknown", http.StatusNotFound, ""},
		{"/charts/energy-overview.svg", http.StatusOK, "image/svg+xml"},
		{"/charts/unknown.svg", http.StatusNotFound, ""},
		{"/export/alerts.csv", http.StatusOK, "text/csv"},
		{"/export/alerts.xlsx", http.StatusOK, "application/vnd.openxmlformats"},
		{"/export/alerts.pdf", http.StatusNotFound, ""},
		{"/no/such/page", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))

			rec.AssertStatus(t, tt.status)
			if tt.contentType != "" {
				rec.AssertHeader(t, "Content-Type", tt.contentType)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID header")
			}
		})
	}
}

func TestRouter_CalculatorRequiresCSRF(t *testing.T) {
	h := newTestRouter(t)

	form := url.Values{"sqft": {"25000"}, "cost": {"15000"}, "tier": {"Basic"}}
	req := testutil.NewFormRequest("POST", "/dashboard/energy/calculator", form)
	rec := testutil.NewRecorder()

	h.ServeHTTP(rec, req)

	rec.AssertStatus(t, http.StatusForbidden)
	if !strings.Contains(rec.Body.String(), "expired") {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestRouter_RateLimit(t *testing.T) {
	cfg := validAppConfig()
	cfg.RateLimit = 1
	deps, err := ConnectDB(context.Background(), nil, cfg, testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	t.Cleanup(func() { _ = Shutdown(context.Background(), nil, cfg, deps, testLogger()) })
	if deps.Limiter == nil {
		t.Fatal("ConnectDB did not start the limiter")
	}

	h, err := newRouter(cfg, deps.Limiter, false, testLogger())
	if err != nil {
		t.Fatalf("newRouter: %v", err)
	}

	codes := make([]int, 0, 2)
	for range 2 {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/charts", nil))
		codes = append(codes, rec.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("status codes = %v, want [200 429]", codes)
	}

	// Health checks are not throttled.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/health", nil))
	if rec.Code == http.StatusTooManyRequests {
		t.Error("/health should not be rate limited")
	}
}

func TestConnectDB_LimiterOff(t *testing.T) {
	deps, err := ConnectDB(context.Background(), nil, validAppConfig(), testLogger())
	if err != nil {
		t.Fatalf("ConnectDB: %v", err)
	}
	if deps.Limiter != nil {
		t.Error("rate_limit 0 should not start a limiter")
	}
	if err := Shutdown(context.Background(), nil, validAppConfig(), deps, testLogger()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
