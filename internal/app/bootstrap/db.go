// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"time"

	"github.com/dalemusser/propertypulse/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB sets up back-end resources. PropertyPulse has no database;
// it only starts the request limiter when rate_limit is positive.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps
	if appCfg.RateLimit > 0 {
		deps.Limiter = ratelimit.New(appCfg.RateLimit, time.Minute)
		logger.Info("rate limiter started", zap.Int("per_minute", appCfg.RateLimit))
	}
	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed. There is nothing to set up.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return nil
}
