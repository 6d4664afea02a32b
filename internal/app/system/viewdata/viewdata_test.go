package viewdata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/system/selection"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

func TestNewBaseVM(t *testing.T) {
	Init(Site{Name: "PropertyPulse AI", Company: "Columbus Capital"})
	t.Cleanup(func() { Init(Site{}) })

	sel := selection.Selection{Property: "Whole Foods", Tab: models.TabEnergy, Horizon: 6}
	r := httptest.NewRequest(http.MethodGet, "/dashboard/energy", nil)
	vm := NewBaseVM(r, sel, "Energy", "/")

	if vm.SiteName != "PropertyPulse AI" || vm.CompanyName != "Columbus Capital" {
		t.Errorf("branding = %q / %q", vm.SiteName, vm.CompanyName)
	}
	if vm.Heading != "Energy Optimization: Whole Foods" {
		t.Errorf("Heading = %q", vm.Heading)
	}
	if len(vm.Tabs) != len(models.Tabs) {
		t.Fatalf("tabs = %d", len(vm.Tabs))
	}
	active := 0
	for _, tab := range vm.Tabs {
		if tab.Active {
			active++
			if tab.Slug != "energy" {
				t.Errorf("active tab = %q", tab.Slug)
			}
		}
	}
	if active != 1 {
		t.Errorf("active tabs = %d, want 1", active)
	}

	selected := 0
	for _, p := range vm.Properties {
		if p.Selected {
			selected++
		}
	}
	if selected != 1 || vm.Properties[0].Name != models.AllProperties {
		t.Errorf("property options wrong: %+v", vm.Properties[:2])
	}
}

func TestInit_EmptyNameFallsBack(t *testing.T) {
	Init(Site{Company: "X"})
	if got := CurrentSite().Name; got != models.DefaultSiteName {
		t.Errorf("Name = %q", got)
	}
}
