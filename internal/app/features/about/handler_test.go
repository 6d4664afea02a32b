package about

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"go.uber.org/zap"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler(zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestNewPageData(t *testing.T) {
	viewdata.Init(viewdata.Site{Name: "PropertyPulse AI", Company: "Acme Holdings"})
	defer viewdata.Init(viewdata.Site{})

	data := newPageData(httptest.NewRequest("GET", "/about", nil))

	if data.Title != "About PropertyPulse AI" {
		t.Errorf("Title = %q", data.Title)
	}
	if !strings.Contains(data.Blurb, "Acme Holdings") {
		t.Errorf("Blurb should name the company: %q", data.Blurb)
	}
	if len(data.Charts) == 0 || len(data.Datasets) == 0 {
		t.Error("expected chart and dataset listings")
	}
}

func TestServeAbout_ReturnsOK(t *testing.T) {
	handler := NewHandler(zap.NewNop())

	req := httptest.NewRequest("GET", "/about", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		handler.ServeAbout(rec, req)
	}()
}

func TestNewPageData_BackURL(t *testing.T) {
	tests := []struct {
		target string
		want   string
	}{
		{"/about", "/dashboard"},
		{"/about?return=/dashboard/energy?horizon=6", "/dashboard/energy?horizon=6"},
		{"/about?return=//evil.example", "/dashboard"},
	}
	for _, tt := range tests {
		data := newPageData(httptest.NewRequest("GET", tt.target, nil))
		if data.BackURL != tt.want {
			t.Errorf("%s: BackURL = %q, want %q", tt.target, data.BackURL, tt.want)
		}
	}
}
