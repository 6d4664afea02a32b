// Package formutil provides helpers for re-rendering calculator forms with
// validation errors.
//
// When a calculator submission carries an input the server cannot use, the
// form partial is re-rendered with:
// - The clamped values that were actually used (echoed back)
// - An error message explaining what was substituted
// - The option lists needed to redraw the controls
//
// Embed Base in the partial's data struct and populate it with SetBase.
//
// Example usage:
//
//	type energyCalcData struct {
//		formutil.Base
//		SquareFeet float64
//		Tiers      []tierOption
//	}
//
//	data := energyCalcData{SquareFeet: sqft}
//	formutil.SetBase(&data.Base, r, "Energy Savings Calculator", "/dashboard/energy")
//	data.SetError("Unknown optimization level; using Basic.")
//	templates.RenderSnippet(w, "energy_calculator", data)
package formutil

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// Base contains common fields for calculator forms.
type Base struct {
	Title       string
	BackURL     string
	CurrentPath string
	CSRFToken   string
	Error       template.HTML
}

// SetBase populates the common Base fields from the request.
//
// Parameters:
//   - b: pointer to the Base struct to populate
//   - r: the HTTP request
//   - title: the form title
//   - backDefault: default URL for the back link if none in request
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.Title = title
	b.BackURL = httpnav.ResolveBackURL(r, backDefault)
	b.CurrentPath = httpnav.CurrentPath(r)
	b.CSRFToken = csrf.Token(r)
}

// SetError sets the error message on a Base struct. The message is escaped.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}

// AddError appends msg to any existing error, separated by a line break.
func (b *Base) AddError(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	esc := template.HTMLEscapeString(msg)
	if b.Error == "" {
		b.Error = template.HTML(esc)
		return
	}
	b.Error = b.Error + template.HTML("<br>"+esc)
}

// HasError reports whether an error message is set.
func (b *Base) HasError() bool {
	return b.Error != ""
}
