// internal/app/bootstrap/appconfig.go
package bootstrap

import "github.com/dalemusser/propertypulse/internal/domain/models"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - Request body size limits
//
// AppConfig carries what is specific to the dashboard: branding, the
// widget-state cookie, CSRF, chart sizes and the widget defaults.
type AppConfig struct {
	// Branding
	SiteName    string // Shown in the sidebar and page titles
	CompanyName string // Portfolio owner named in the sidebar and about page

	// Widget-state cookie
	SessionKey    string // Secret key for signing the widget cookie (must be strong in production)
	SessionName   string // Cookie name (default: propertypulse-widgets)
	SessionDomain string // Cookie domain (blank means current host)

	// CSRF protection for the calculator forms
	CSRFKey string // 32-byte key; blank derives one from SessionKey

	// Chart rendering
	ChartWidth  int // SVG width in pixels
	ChartHeight int // SVG height in pixels

	// Throttling for chart, API and export requests
	RateLimit int // Requests per minute per client; 0 disables

	// Widget defaults
	DefaultTab     models.Tab // Tab shown when none is selected or remembered
	DefaultHorizon int        // Time horizon slider default (1..10)
}
