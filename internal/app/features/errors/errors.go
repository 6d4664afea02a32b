// internal/app/features/errors/errors.go
package errors

import (
	"net/http"
	"strings"

	"github.com/dalemusser/propertypulse/internal/app/system/reqlog"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	SiteName  string
	Title     string
	Message   string
	BackURL   string
	RequestID string
}

func newPageData(r *http.Request, title, msg, backURL string) pageData {
	if backURL == "" {
		backURL = "/"
	}
	return pageData{
		SiteName:  viewdata.CurrentSite().Name,
		Title:     title,
		Message:   msg,
		BackURL:   backURL,
		RequestID: reqlog.ID(r.Context()),
	}
}

// Handler is the errors feature handler.
// No dependencies; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders the friendly 404 page.
// Used as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "")
}

// RenderNotFound writes a 404 page. JSON and asset callers get a plain
// text body instead.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "We couldn't find that page."
	}
	if !wantsHTML(r) {
		http.Error(w, msg, http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", newPageData(r, "Not found", msg, "/"))
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html")
}
