package dashboard_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/propertypulse/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *dashboard.Handler {
	t.Helper()
	logger := zap.NewNop()
	return dashboard.NewHandler(testutil.NewSelectionStore(t), errorsfeature.NewErrorLogger(logger), logger)
}

// serve runs fn, tolerating a panic from template rendering, which needs a
// booted engine.
func serve(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			// Template rendering may panic in tests
		}
	}()
	fn()
}

func TestNewHandler(t *testing.T) {
	h := newTestHandler(t)
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestDispatch(t *testing.T) {
	tests := []struct {
		tab  models.Tab
		want string
	}{
		{models.TabOverview, "dashboard_overview"},
		{models.TabMaintenance, "dashboard_maintenance"},
		{models.TabEnergy, "dashboard_energy"},
		{models.TabTenant, "dashboard_tenant"},
		{models.TabFinancial, "dashboard_financial"},
		{models.Tab("Nonexistent"), "dashboard_overview"},
		{models.Tab(""), "dashboard_overview"},
	}

	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			name, data := dashboard.Dispatch(tt.tab)(viewdata.BaseVM{})
			if name != tt.want {
				t.Errorf("Dispatch(%q) template = %q, want %q", tt.tab, name, tt.want)
			}
			if data == nil {
				t.Error("view returned nil data")
			}
		})
	}
}

func TestServeDashboard_RemembersSelection(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/dashboard/energy?property=Whole+Foods&horizon=7")
	req = testutil.WithChiURLParam(req, "tab", "energy")
	rec := testutil.NewRecorder()

	serve(func() { h.ServeDashboard(rec, req) })

	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected the widget cookie to be set")
	}

	// A later visit to "/" without parameters resumes the remembered tab.
	next := testutil.NewRequest("GET", "/")
	for _, c := range cookies {
		next.AddCookie(c)
	}
	sel := h.Sel.Resolve(next, "")
	if sel.Tab != models.TabEnergy {
		t.Errorf("remembered tab = %q, want %q", sel.Tab, models.TabEnergy)
	}
	if sel.Property != "Whole Foods" {
		t.Errorf("remembered property = %q, want %q", sel.Property, "Whole Foods")
	}
	if sel.Horizon != 7 {
		t.Errorf("remembered horizon = %d, want 7", sel.Horizon)
	}
}

func TestServeDashboard_UnknownTab(t *testing.T) {
	h := newTestHandler(t)

	req := testutil.NewRequest("GET", "/dashboard/bogus")
	req = testutil.WithChiURLParam(req, "tab", "bogus")
	rec := testutil.NewRecorder()

	serve(func() { h.ServeDashboard(rec, req) })

	if rec.Code == http.StatusNotFound {
		t.Error("unknown tab should fall back to the overview, not 404")
	}
}

func TestServeEnergyCalculator(t *testing.T) {
	h := newTestHandler(t)

	form := url.Values{"sqft": {"25000"}, "cost": {"15000"}, "tier": {"Advanced"}}
	req := testutil.AsHTMX(testutil.NewFormRequest("POST", "/dashboard/energy/calculator", form))
	rec := testutil.NewRecorder()

	serve(func() { h.ServeEnergyCalculator(rec, req) })

	if strings.Contains(rec.Body.String(), "Could not compute") {
		t.Error("valid energy inputs should compute")
	}
}

func TestServeImplementationCalculator(t *testing.T) {
	h := newTestHandler(t)

	form := url.Values{
		"count":    {"5"},
		"tier":     {string(models.ImplementationStandard)},
		"existing": {"nonsense"},
	}
	req := testutil.AsHTMX(testutil.NewFormRequest("POST", "/dashboard/financial/calculator", form))
	rec := testutil.NewRecorder()

	serve(func() { h.ServeImplementationCalculator(rec, req) })

	if strings.Contains(rec.Body.String(), "Could not compute") {
		t.Error("unknown existing system should fall back, not fail")
	}
}
