// internal/domain/models/tabs.go
package models

import "strings"

// Tab identifies one dashboard view.
//
// The string value is the human-facing label shown in the sidebar; Slug
// returns the stable URL form used in routes and query strings.
type Tab string

const (
	TabOverview    Tab = "Overview"
	TabMaintenance Tab = "Maintenance"
	TabEnergy      Tab = "Energy"
	TabTenant      Tab = "Tenant Experience"
	TabFinancial   Tab = "Financial Impact"
)

// Tabs lists every view in sidebar order.
var Tabs = []Tab{
	TabOverview,
	TabMaintenance,
	TabEnergy,
	TabTenant,
	TabFinancial,
}

// DefaultTab is shown when no valid tab is selected.
const DefaultTab = TabOverview

var tabSlugs = map[Tab]string{
	TabOverview:    "overview",
	TabMaintenance: "maintenance",
	TabEnergy:      "energy",
	TabTenant:      "tenant",
	TabFinancial:   "financial",
}

// Slug returns the URL-safe identifier for the tab.
func (t Tab) Slug() string {
	return tabSlugs[t]
}

// Valid reports whether t is one of the known tabs.
func (t Tab) Valid() bool {
	_, ok := tabSlugs[t]
	return ok
}

// ParseTab accepts either a tab label ("Tenant Experience") or a slug
// ("tenant"), case-insensitively. The second return is false when the
// input matches no tab.
func ParseTab(s string) (Tab, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	for t, slug := range tabSlugs {
		if s == slug || s == strings.ToLower(string(t)) {
			return t, true
		}
	}
	return "", false
}
