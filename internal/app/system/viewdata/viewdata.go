// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"
	"sync"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/app/system/selection"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Site holds branding shown on every page.
type Site struct {
	Name    string
	Company string
}

// NavTab is one entry of the sidebar view selector.
type NavTab struct {
	Label  string
	Slug   string
	URL    string
	Active bool
}

// PropertyOption is one entry of the property selector.
type PropertyOption struct {
	Name     string
	Selected bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type energyData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := energyData{
//	    BaseVM: viewdata.NewBaseVM(r, sel, "Energy", "/"),
//	}
type BaseVM struct {
	SiteName    string
	CompanyName string

	// Page context
	Title       string
	Heading     string
	BackURL     string
	CurrentPath string

	// CSRF protection
	CSRFToken string

	// Sidebar widgets
	Selection  selection.Selection
	Tabs       []NavTab
	Properties []PropertyOption
	Horizon    inputval.Slider
}

var (
	mu   sync.RWMutex
	site = Site{Name: models.DefaultSiteName}
)

// Init sets the site branding. Call this once at startup from bootstrap.
func Init(s Site) {
	mu.Lock()
	defer mu.Unlock()
	if s.Name == "" {
		s.Name = models.DefaultSiteName
	}
	site = s
}

// CurrentSite returns the branding set by Init.
func CurrentSite() Site {
	mu.RLock()
	defer mu.RUnlock()
	return site
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// Parameters:
//   - r: the HTTP request
//   - sel: the resolved widget selection
//   - title: the page title
//   - backDefault: default URL for the back button if none in request
func NewBaseVM(r *http.Request, sel selection.Selection, title, backDefault string) BaseVM {
	s := CurrentSite()
	vm := BaseVM{
		SiteName:    s.Name,
		CompanyName: s.Company,
		Title:       title,
		Heading:     sel.Heading(),
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
		Selection:   sel,
		Horizon:     inputval.Horizon,
	}

	vm.Tabs = make([]NavTab, 0, len(models.Tabs))
	for _, t := range models.Tabs {
		vm.Tabs = append(vm.Tabs, NavTab{
			Label:  string(t),
			Slug:   t.Slug(),
			URL:    sel.URL(t),
			Active: t == sel.Tab,
		})
	}

	props := sampledata.Properties()
	vm.Properties = make([]PropertyOption, len(props))
	for i, p := range props {
		vm.Properties[i] = PropertyOption{Name: p, Selected: p == sel.Property}
	}
	return vm
}
