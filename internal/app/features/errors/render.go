// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/propertypulse/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ErrorLogger logs server-side failures and renders the matching page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger wraps logger for use by feature handlers.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{Log: logger}
}

// LogServerError logs msg with err and the request ID, then writes a 500.
// userMsg is what the visitor sees; backURL defaults to "/".
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	reqlog.Logger(r, e.Log).Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	RenderServerError(w, r, userMsg, backURL)
}

// RenderServerError writes a 500 page, or a plain body for non-HTML callers.
func RenderServerError(w http.ResponseWriter, r *http.Request, userMsg, backURL string) {
	if userMsg == "" {
		userMsg = "Something went wrong."
	}
	if !wantsHTML(r) {
		http.Error(w, userMsg, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	if r.Header.Get("HX-Request") == "true" {
		templates.RenderSnippet(w, "error_snippet", newPageData(r, "Error", userMsg, backURL))
		return
	}
	templates.Render(w, r, "error_server", newPageData(r, "Server error", userMsg, backURL))
}
