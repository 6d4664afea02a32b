// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// minKeyLen is the shortest signing key accepted in production.
const minKeyLen = 32

// devSessionKey is the shipped default. It is public, so production rejects it.
const devSessionKey = "dev-only-change-me-please-0123456789ABCDEF"

// appConfigKeys defines the configuration keys for PropertyPulse.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, session_key, etc.
//   - Environment variables: PROPERTYPULSE_SITE_NAME, PROPERTYPULSE_SESSION_KEY, etc.
//   - Command-line flags: --site_name, --session_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: models.DefaultSiteName, Desc: "Site name shown in the sidebar"},
	{Name: "company_name", Default: "Columbus Capital", Desc: "Portfolio owner shown in the sidebar"},

	// Widget-state cookie
	{Name: "session_key", Default: devSessionKey, Desc: "Widget cookie signing key (must be strong in production)"},
	{Name: "session_name", Default: "propertypulse-widgets", Desc: "Widget cookie name"},
	{Name: "session_domain", Default: "", Desc: "Widget cookie domain (blank means current host)"},

	// CSRF
	{Name: "csrf_key", Default: "", Desc: "32-byte CSRF key (blank derives one from session_key)"},

	// Charts
	{Name: "chart_width", Default: 800, Desc: "Rendered chart width in pixels"},
	{Name: "chart_height", Default: 420, Desc: "Rendered chart height in pixels"},

	// Throttling
	{Name: "rate_limit", Default: 240, Desc: "Chart, API and export requests per minute per client (0 disables)"},

	// Widget defaults
	{Name: "default_tab", Default: "overview", Desc: "Tab shown when none is selected (overview, maintenance, energy, tenant, financial)"},
	{Name: "default_horizon", Default: 5, Desc: "Default time horizon in years (1-10)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PROPERTYPULSE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
//
// An unparsable default_tab is kept as-is so ValidateConfig can reject it.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PROPERTYPULSE", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	rawTab := appValues.String("default_tab")
	tab, ok := models.ParseTab(rawTab)
	if !ok {
		tab = models.Tab(rawTab)
	}

	appCfg := AppConfig{
		SiteName:    appValues.String("site_name"),
		CompanyName: appValues.String("company_name"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		CSRFKey: appValues.String("csrf_key"),

		ChartWidth:  appValues.Int("chart_width"),
		ChartHeight: appValues.Int("chart_height"),

		RateLimit: appValues.Int("rate_limit"),

		DefaultTab:     tab,
		DefaultHorizon: appValues.Int("default_horizon"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// Chart sizes must be positive, the default tab must be known and the
// default horizon must fit the slider. Production also requires real keys.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.ChartWidth <= 0 || appCfg.ChartHeight <= 0 {
		return fmt.Errorf("chart size must be positive, got %dx%d", appCfg.ChartWidth, appCfg.ChartHeight)
	}
	if appCfg.RateLimit < 0 {
		return fmt.Errorf("rate_limit must not be negative, got %d", appCfg.RateLimit)
	}
	if !appCfg.DefaultTab.Valid() {
		return fmt.Errorf("unknown default_tab %q", appCfg.DefaultTab)
	}
	if !inputval.Horizon.InRange(appCfg.DefaultHorizon) {
		return fmt.Errorf("default_horizon %d outside %d..%d",
			appCfg.DefaultHorizon, inputval.Horizon.Min, inputval.Horizon.Max)
	}

	if coreCfg != nil && coreCfg.Env == "prod" {
		if appCfg.SessionKey == devSessionKey {
			return fmt.Errorf("session_key must be set in production; the default key is public")
		}
		if len(appCfg.SessionKey) < minKeyLen {
			return fmt.Errorf("session_key must be at least %d bytes in production", minKeyLen)
		}
		if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
			return fmt.Errorf("csrf_key must be exactly 32 bytes")
		}
	} else if len(appCfg.SessionKey) < minKeyLen {
		logger.Warn("session_key is short; fine for development only",
			zap.Int("length", len(appCfg.SessionKey)))
	}

	return nil
}
