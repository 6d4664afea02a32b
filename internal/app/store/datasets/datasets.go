// Package datasets exposes the sample series as exportable tables.
package datasets

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/calc"
	"github.com/dalemusser/propertypulse/internal/app/system/tabular"
)

// ErrUnknownDataset is returned by Table for a name not in Names.
var ErrUnknownDataset = errors.New("datasets: unknown dataset")

var tables = map[string]func() tabular.Table{
	"maintenance":          maintenance,
	"detection-efficiency": detectionEfficiency,
	"energy":               energy,
	"satisfaction":         satisfaction,
	"sentiment":            sentiment,
	"cost-savings":         costSavings,
	"roi":                  roi,
	"alerts":               alerts,
	"maintenance-timeline": timeline,
	"innovations":          innovations,
	"properties":           properties,
}

// Table returns the named dataset.
func Table(name string) (tabular.Table, error) {
	build, ok := tables[name]
	if !ok {
		return tabular.Table{}, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}
	return build(), nil
}

// Names lists every dataset, sorted.
func Names() []string {
	out := make([]string, 0, len(tables))
	for n := range tables {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func maintenance() tabular.Table {
	t := tabular.Table{
		Name:   "maintenance",
		Title:  "Maintenance Issues",
		Header: []string{"Month", "AI Predicted", "Actual", "Urgent", "Projected"},
	}
	for _, m := range sampledata.Maintenance() {
		t.Rows = append(t.Rows, []any{m.Month, m.Predicted, m.Actual, m.Urgent, m.Future})
	}
	return t
}

func detectionEfficiency() tabular.Table {
	t := tabular.Table{
		Name:   "detection-efficiency",
		Title:  "Detection Efficiency",
		Header: []string{"Month", "Efficiency (%)"},
	}
	for _, p := range sampledata.DetectionEfficiency() {
		t.Rows = append(t.Rows, []any{p.Month, p.Percent})
	}
	return t
}

func energy() tabular.Table {
	t := tabular.Table{
		Name:   "energy",
		Title:  "Energy Usage",
		Header: []string{"Month", "Standard (kWh)", "AI-Optimized (kWh)", "Projected"},
	}
	for _, e := range sampledata.Energy() {
		t.Rows = append(t.Rows, []any{e.Month, e.Standard, e.Optimized, e.Future})
	}
	return t
}

func satisfaction() tabular.Table {
	t := tabular.Table{
		Name:   "satisfaction",
		Title:  "Tenant Satisfaction",
		Header: []string{"Quarter", "Score", "Industry Average", "Projected"},
	}
	for _, q := range sampledata.Satisfaction() {
		t.Rows = append(t.Rows, []any{q.Quarter, q.Score, float64(sampledata.IndustryAverageSatisfaction), q.Future})
	}
	return t
}

func sentiment() tabular.Table {
	t := tabular.Table{
		Name:   "sentiment",
		Title:  "Tenant Sentiment",
		Header: []string{"Category", "Positive (%)", "Neutral (%)", "Negative (%)"},
	}
	for _, s := range sampledata.Sentiment() {
		t.Rows = append(t.Rows, []any{s.Category, s.Positive, s.Neutral, s.Negative})
	}
	return t
}

func costSavings() tabular.Table {
	t := tabular.Table{
		Name:   "cost-savings",
		Title:  "Cost Savings Breakdown",
		Header: []string{"Category", "Share (%)"},
	}
	for _, c := range sampledata.CostSavings() {
		t.Rows = append(t.Rows, []any{c.Category, c.Percent})
	}
	return t
}

// roi leaves the cumulative column empty when it is not computable.
func roi() tabular.Table {
	t := tabular.Table{
		Name:   "roi",
		Title:  "Return on Investment",
		Header: []string{"Year", "Investment", "Returns", "Cumulative ROI (%)"},
	}
	rows := sampledata.ROIInputs()
	if withROI, err := calc.WithCumulativeROI(rows); err == nil {
		rows = withROI
	}
	for _, y := range rows {
		t.Rows = append(t.Rows, []any{y.Year, y.Investment, y.Returns, y.CumulativeROI})
	}
	return t
}

func alerts() tabular.Table {
	t := tabular.Table{
		Name:   "alerts",
		Title:  "AI Alerts",
		Header: []string{"Property", "Issue", "Priority"},
	}
	for _, a := range sampledata.Alerts() {
		t.Rows = append(t.Rows, []any{a.Property, a.Issue, string(a.Priority)})
	}
	return t
}

func timeline() tabular.Table {
	t := tabular.Table{
		Name:   "maintenance-timeline",
		Title:  "Maintenance Timeline",
		Header: []string{"Task", "Property", "Due In (days)", "Severity"},
	}
	for _, m := range sampledata.MaintenanceTimeline() {
		t.Rows = append(t.Rows, []any{m.Task, m.Property, m.DueInDays, string(m.Severity)})
	}
	return t
}

func innovations() tabular.Table {
	t := tabular.Table{
		Name:   "innovations",
		Title:  "Innovation Roadmap",
		Header: []string{"Year", "Innovation", "Description"},
	}
	for _, i := range sampledata.Innovations() {
		t.Rows = append(t.Rows, []any{i.Year, i.Name, i.Description})
	}
	return t
}

// properties skips the "All Properties" sentinel.
func properties() tabular.Table {
	t := tabular.Table{
		Name:   "properties",
		Title:  "Properties",
		Header: []string{"Property"},
	}
	for _, p := range sampledata.Properties()[1:] {
		t.Rows = append(t.Rows, []any{p})
	}
	return t
}
