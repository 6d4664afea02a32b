package selection

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/propertypulse/internal/domain/models"
	"go.uber.org/zap"
)

const testKey = "0123456789abcdef0123456789abcdef"

func newTestStore(t *testing.T, d Defaults) *Store {
	t.Helper()
	s, err := NewStore(Options{Key: testKey, Defaults: d}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStore_FixesDefaults(t *testing.T) {
	s := newTestStore(t, Defaults{Tab: "Bogus", Horizon: 99})
	d := s.Defaults()
	if d.Tab != models.TabOverview || d.Horizon != 5 {
		t.Errorf("defaults = %+v", d)
	}
}

func TestNewStore_EmptyKeyGeneratesOne(t *testing.T) {
	if _, err := NewStore(Options{}, zap.NewNop()); err != nil {
		t.Fatalf("NewStore with empty key: %v", err)
	}
}

func TestResolve(t *testing.T) {
	s := newTestStore(t, Defaults{Tab: models.TabEnergy, Horizon: 3})

	tests := []struct {
		name    string
		target  string
		pathTab string
		want    Selection
	}{
		{"defaults", "/", "", Selection{models.AllProperties, models.TabEnergy, 3}},
		{"query", "/?property=Whole+Foods&tab=financial&horizon=8", "",
			Selection{"Whole Foods", models.TabFinancial, 8}},
		{"label tab", "/?tab=Tenant+Experience", "", Selection{models.AllProperties, models.TabTenant, 3}},
		{"path wins over query", "/?tab=energy", "maintenance", Selection{models.AllProperties, models.TabMaintenance, 3}},
		{"unknown property", "/?property=Nowhere", "", Selection{models.AllProperties, models.TabEnergy, 3}},
		{"unknown tab falls back to overview", "/?tab=settings", "", Selection{models.AllProperties, models.TabOverview, 3}},
		{"horizon clamped", "/?horizon=40", "", Selection{models.AllProperties, models.TabEnergy, 10}},
		{"horizon garbage", "/?horizon=abc", "", Selection{models.AllProperties, models.TabEnergy, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if got := s.Resolve(r, tt.pathTab); got != tt.want {
				t.Errorf("Resolve = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRememberRoundTrip(t *testing.T) {
	s := newTestStore(t, Defaults{})

	first := httptest.NewRequest(http.MethodGet, "/?property=Target+Store&tab=tenant&horizon=9", nil)
	sel := s.Resolve(first, "")
	w := httptest.NewRecorder()
	if err := s.Remember(w, first, sel); err != nil {
		t.Fatalf("Remember: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no cookie written")
	}
	if !cookies[0].HttpOnly {
		t.Error("widget cookie should be HttpOnly")
	}

	second := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		second.AddCookie(c)
	}
	got := s.Resolve(second, "")
	if got != sel {
		t.Errorf("remembered = %+v, want %+v", got, sel)
	}

	// explicit values still win over the cookie
	third := httptest.NewRequest(http.MethodGet, "/?horizon=2", nil)
	for _, c := range cookies {
		third.AddCookie(c)
	}
	if got := s.Resolve(third, "overview"); got.Horizon != 2 || got.Tab != models.TabOverview || got.Property != "Target Store" {
		t.Errorf("override = %+v", got)
	}
}

func TestResolve_IgnoresForeignCookie(t *testing.T) {
	s := newTestStore(t, Defaults{})
	other, err := NewStore(Options{Key: strings.Repeat("z", 32)}, zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	if err := other.Remember(w, first, Selection{"Whole Foods", models.TabEnergy, 7}); err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	got := s.Resolve(r, "")
	want := Selection{models.AllProperties, models.TabOverview, 5}
	if got != want {
		t.Errorf("Resolve with undecodable cookie = %+v, want %+v", got, want)
	}
}

func TestSelectionURLAndHeading(t *testing.T) {
	sel := Selection{Property: "Whole Foods", Tab: models.TabEnergy, Horizon: 4}
	if got := sel.URL(models.TabFinancial); got != "/dashboard/financial?horizon=4&property=Whole+Foods" {
		t.Errorf("URL = %q", got)
	}
	if got := sel.Heading(); got != "Energy Optimization: Whole Foods" {
		t.Errorf("Heading = %q", got)
	}
	sel.Tab = models.TabTenant
	if got := sel.Heading(); got != "Tenant Experience: Whole Foods" {
		t.Errorf("Heading = %q", got)
	}
}

func TestNormalizeProperty(t *testing.T) {
	if got := NormalizeProperty("  Coronado Building "); got != "Coronado Building" {
		t.Errorf("got %q", got)
	}
	if got := NormalizeProperty("coronado building"); got != models.AllProperties {
		t.Errorf("property names are case-sensitive, got %q", got)
	}
}
