package dashboard

import (
	"html/template"

	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// cardVM is an InfoCard ready for the template, with its body sanitized.
type cardVM struct {
	Title string
	Value string
	Body  template.HTML
}

func cardVMs(in []models.InfoCard) []cardVM {
	out := make([]cardVM, len(in))
	for i, c := range in {
		out[i] = cardVM{
			Title: c.Title,
			Value: c.Value,
			Body:  htmlsanitize.PrepareForDisplay(c.Body),
		}
	}
	return out
}

// chartVM points the page at one catalog chart.
type chartVM struct {
	Name    string
	Title   string
	SVGURL  string
	DataURL string
	Note    string
}

func chartRef(name, note string) chartVM {
	vm := chartVM{
		Name:    name,
		SVGURL:  "/charts/" + name + ".svg",
		DataURL: "/api/charts/" + name,
		Note:    note,
	}
	if spec, err := charts.Build(name); err == nil {
		vm.Title = spec.Title
	}
	return vm
}

type alertVM struct {
	Property string
	Issue    string
	Priority string
	Class    string
	Color    string
}

func alertVMs(in []models.Alert) []alertVM {
	out := make([]alertVM, len(in))
	for i, a := range in {
		out[i] = alertVM{
			Property: a.Property,
			Issue:    a.Issue,
			Priority: string(a.Priority),
			Class:    a.Priority.Class(),
			Color:    a.Priority.Color(),
		}
	}
	return out
}

// metricVM is a computed figure; Value is format.NA when not computable.
type metricVM struct {
	Label string
	Value string
	Note  string
}
