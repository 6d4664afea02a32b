// internal/app/bootstrap/routes.go
package bootstrap

import (
	"crypto/sha256"
	"net/http"

	aboutfeature "github.com/dalemusser/propertypulse/internal/app/features/about"
	chartapifeature "github.com/dalemusser/propertypulse/internal/app/features/chartapi"
	dashboardfeature "github.com/dalemusser/propertypulse/internal/app/features/dashboard"
	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	exportfeature "github.com/dalemusser/propertypulse/internal/app/features/export"
	healthfeature "github.com/dalemusser/propertypulse/internal/app/features/health"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/limits"
	"github.com/dalemusser/propertypulse/internal/app/system/ratelimit"
	"github.com/dalemusser/propertypulse/internal/app/system/reqlog"
	"github.com/dalemusser/propertypulse/internal/app/system/selection"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup and the Startup hook
// have completed. PropertyPulse boots the template engine, then builds the
// router: request logging, CSRF protection for the calculator forms, the
// widget-state cookie store, and the feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	return newRouter(appCfg, deps.Limiter, coreCfg.Env == "prod", logger)
}

// newRouter builds the router without touching the template engine, so
// tests can exercise the JSON, SVG and export routes directly.
// A nil limiter disables throttling.
func newRouter(appCfg AppConfig, limiter *ratelimit.Limiter, secure bool, logger *zap.Logger) (http.Handler, error) {
	// Widget-state cookie store. Secure cookies are enabled in production mode.
	sel, err := selection.NewStore(selection.Options{
		Key:    appCfg.SessionKey,
		Name:   appCfg.SessionName,
		Domain: appCfg.SessionDomain,
		Secure: secure,
		Defaults: selection.Defaults{
			Tab:     appCfg.DefaultTab,
			Horizon: appCfg.DefaultHorizon,
		},
	}, logger)
	if err != nil {
		logger.Error("widget store init failed", zap.Error(err))
		return nil, err
	}

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(nil, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Chart images, the JSON API and dataset downloads share one throttle.
	r.Group(func(gr chi.Router) {
		gr.Use(ratelimit.Middleware(limiter, logger))

		chartHandler := chartapifeature.NewHandler(charts.NewRenderer(appCfg.ChartWidth, appCfg.ChartHeight), errLog, logger)
		gr.Mount("/charts", chartapifeature.Routes(chartHandler))
		gr.Mount("/api", chartapifeature.APIRoutes(chartHandler))

		exportHandler := exportfeature.NewHandler(errLog, logger)
		gr.Mount("/export", exportfeature.Routes(exportHandler))
	})

	// HTML pages. Calculator posts need a CSRF token.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequestSize(limits.MaxFormSize))
		pr.Use(csrfMiddleware(appCfg, secure, logger)...)

		dashboardHandler := dashboardfeature.NewHandler(sel, errLog, logger)
		pr.Get("/", dashboardHandler.ServeDashboard)
		pr.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		aboutHandler := aboutfeature.NewHandler(logger)
		pr.Mount("/about", aboutfeature.Routes(aboutHandler))
	})

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// csrfMiddleware returns the CSRF middleware chain. Outside production the
// site is usually served over plain HTTP, so requests are marked as such
// before the origin check runs.
func csrfMiddleware(appCfg AppConfig, secure bool, logger *zap.Logger) []func(http.Handler) http.Handler {
	protect := csrf.Protect(csrfKey(appCfg),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqlog.Logger(r, logger).Warn("CSRF check failed", zap.Error(csrf.FailureReason(r)))
			http.Error(w, "Forbidden - the form has expired, reload the page and try again.", http.StatusForbidden)
		})),
	)
	if secure {
		return []func(http.Handler) http.Handler{protect}
	}
	plaintext := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
	return []func(http.Handler) http.Handler{plaintext, protect}
}

// csrfKey returns the configured key, or one derived from the session key.
func csrfKey(appCfg AppConfig) []byte {
	if appCfg.CSRFKey != "" {
		return []byte(appCfg.CSRFKey)
	}
	sum := sha256.Sum256([]byte("csrf:" + appCfg.SessionKey))
	return sum[:]
}
