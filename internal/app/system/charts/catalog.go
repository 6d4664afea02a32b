package charts

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/calc"
)

// Chart names served by /charts/{name}.svg and /api/charts/{name}.
const (
	NameMaintenanceOverview = "maintenance-overview"
	NameMaintenanceAnalysis = "maintenance-analysis"
	NameDetectionEfficiency = "detection-efficiency"
	NameEnergyOverview      = "energy-overview"
	NameEnergyOptimization  = "energy-optimization"
	NameSatisfaction        = "satisfaction"
	NameSentiment           = "sentiment"
	NameCostSavings         = "cost-savings"
	NameROI                 = "roi"
)

// ErrUnknownChart is returned by Build for a name not in the catalog.
var ErrUnknownChart = errors.New("charts: unknown chart")

var catalog = map[string]func() Spec{
	NameMaintenanceOverview: func() Spec { return MaintenanceByMonth(sampledata.Maintenance()) },
	NameMaintenanceAnalysis: func() Spec { return MaintenanceAnalysis(sampledata.Maintenance()) },
	NameDetectionEfficiency: func() Spec { return DetectionEfficiency(sampledata.DetectionEfficiency()) },
	NameEnergyOverview:      func() Spec { return EnergyUsage(sampledata.Energy()) },
	NameEnergyOptimization:  buildEnergyOptimization,
	NameSatisfaction:        buildSatisfaction,
	NameSentiment:           func() Spec { return Sentiment(sampledata.Sentiment()) },
	NameCostSavings:         func() Spec { return CostSavings(sampledata.CostSavings()) },
	NameROI:                 buildROI,
}

func buildEnergyOptimization() Spec {
	rows := sampledata.Energy()
	var annual *float64
	if v, err := calc.AnnualizedEnergySaving(rows); err == nil {
		annual = &v
	}
	return EnergyOptimization(rows, annual)
}

func buildSatisfaction() Spec {
	return SatisfactionTrend(sampledata.Satisfaction(), sampledata.IndustryAverageSatisfaction)
}

func buildROI() Spec {
	rows := sampledata.ROIInputs()
	if withROI, err := calc.WithCumulativeROI(rows); err == nil {
		rows = withROI
	}
	return ROI(rows)
}

// Build regenerates the named chart from fresh sample data.
func Build(name string) (Spec, error) {
	fn, ok := catalog[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	return fn(), nil
}

// Names lists every chart in the catalog, sorted.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for name := range catalog {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
