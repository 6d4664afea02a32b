// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/propertypulse/internal/app/resources"
	"github.com/dalemusser/propertypulse/internal/app/store/datasets"
	metricsstore "github.com/dalemusser/propertypulse/internal/app/store/metrics"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/timeouts"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization before the HTTP handler
// is built. It registers the shared templates, applies branding and timeout
// overrides, and logs a summary of the sample data.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(viewdata.Site{Name: appCfg.SiteName, Company: appCfg.CompanyName})

	if n := timeouts.ConfigureFromEnv(); n > 0 {
		cur := timeouts.Current()
		logger.Info("timeout overrides applied",
			zap.Duration("ping", cur.Ping),
			zap.Duration("render", cur.Render),
		)
	}

	derived := metricsstore.FetchDerived()
	for _, msg := range derived.Errors {
		logger.Warn("derived metric not computable", zap.String("error", msg))
	}
	logger.Info("sample data loaded",
		zap.Int("charts", len(charts.Names())),
		zap.Int("datasets", len(datasets.Names())),
		zap.String("default_tab", appCfg.DefaultTab.Slug()),
	)
	return nil
}
