// internal/app/bootstrap/dbdeps.go
package bootstrap

import "github.com/dalemusser/propertypulse/internal/app/system/ratelimit"

// DBDeps holds back-end dependencies for the app.
//
// The dashboard serves generated sample data and has no database. The only
// long-lived resource is the request limiter, created in ConnectDB and
// stopped in Shutdown.
type DBDeps struct {
	Limiter *ratelimit.Limiter // nil when rate_limit is 0
}
