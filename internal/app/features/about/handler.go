// internal/app/features/about/handler.go
package about

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/propertypulse/internal/app/store/datasets"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/navigation"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const (
	blurb  = "PropertyPulse AI is a forward-looking dashboard demonstrating how AI can transform property management for %s."
	credit = "Created by Karan Narula"
)

type pageData struct {
	SiteName    string
	CompanyName string
	Title       string
	Blurb       string
	Credit      string
	BackURL     string
	Charts      []string
	Datasets    []string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func newPageData(r *http.Request) pageData {
	site := viewdata.CurrentSite()
	company := site.Company
	if company == "" {
		company = "Columbus Capital"
	}
	return pageData{
		SiteName:    site.Name,
		CompanyName: company,
		Title:       "About " + site.Name,
		Blurb:       fmt.Sprintf(blurb, company),
		Credit:      credit,
		BackURL:     navigation.SafeBackURL(r, navigation.DashboardBackURL),
		Charts:      charts.Names(),
		Datasets:    datasets.Names(),
	}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "about", newPageData(r))
}
