package charts

import (
	"strconv"

	"github.com/dalemusser/propertypulse/internal/app/system/format"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

const (
	colorPredicted  = "#8884d8"
	colorActual     = "#82ca9d"
	colorUrgent     = "#ff7300"
	colorStandard   = "#ff7300"
	colorOptimized  = "#00C49F"
	colorEfficiency = "#1E88E5"
	colorScore      = "#8884d8"
	colorBenchmark  = "#008000"
	colorPositive   = "#4CAF50"
	colorNeutral    = "#FFC107"
	colorNegative   = "#F44336"
	colorInvestment = "#E57373"
	colorReturns    = "#81C784"
	colorROI        = "#5C6BC0"
)

// piePalette follows the qualitative Set3 scheme.
var piePalette = []string{"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3", "#fdb462"}

// firstFuture returns the index of the first projected row, or -1.
func firstFuture(n int, future func(int) bool) int {
	for i := 0; i < n; i++ {
		if future(i) {
			return i
		}
	}
	return -1
}

func maintenanceSeries(rows []models.MaintenanceMonth, predictedName string) ([]string, []Series) {
	cats := make([]string, len(rows))
	predicted := make([]float64, len(rows))
	actual := make([]float64, len(rows))
	urgent := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Month
		predicted[i] = float64(r.Predicted)
		actual[i] = float64(r.Actual)
		urgent[i] = float64(r.Urgent)
	}
	return cats, []Series{
		{Name: predictedName, Kind: SeriesBar, Values: predicted, Color: colorPredicted},
		{Name: "Actual", Kind: SeriesBar, Values: actual, Color: colorActual},
		{Name: "Urgent", Kind: SeriesBar, Values: urgent, Color: colorUrgent},
	}
}

// MaintenanceByMonth is the overview grouped bar chart of predicted, actual
// and urgent issues, divided at the first predicted month.
func MaintenanceByMonth(rows []models.MaintenanceMonth) Spec {
	cats, series := maintenanceSeries(rows, "Predicted")
	s := Spec{
		Name:       NameMaintenanceOverview,
		Title:      "Maintenance Issues by Month",
		Kind:       KindGroupedBar,
		XAxis:      "Month",
		YAxis:      "Number of Issues",
		Categories: cats,
		Series:     series,
	}
	if i := firstFuture(len(rows), func(i int) bool { return rows[i].Future }); i >= 0 {
		s.Divider = &Divider{Category: cats[i], Label: "AI Predictions", Value: s.MaxValue(false)}
	}
	return s
}

// MaintenanceAnalysis is the maintenance tab's monthly issue breakdown.
func MaintenanceAnalysis(rows []models.MaintenanceMonth) Spec {
	cats, series := maintenanceSeries(rows, "AI Predicted")
	return Spec{
		Name:       NameMaintenanceAnalysis,
		Title:      "Monthly Maintenance Issues",
		Kind:       KindGroupedBar,
		XAxis:      "Month",
		YAxis:      "Number of Issues",
		Categories: cats,
		Series:     series,
	}
}

// DetectionEfficiency plots AI detection efficiency over historical months.
func DetectionEfficiency(points []models.EfficiencyPoint) Spec {
	cats := make([]string, len(points))
	vals := make([]float64, len(points))
	for i, p := range points {
		cats[i] = p.Month
		vals[i] = p.Percent
	}
	return Spec{
		Name:       NameDetectionEfficiency,
		Title:      "AI Detection Efficiency",
		Kind:       KindLine,
		XAxis:      "Month",
		YAxis:      "Efficiency (%)",
		Categories: cats,
		Series: []Series{
			{Name: "AI Detection Efficiency", Kind: SeriesLine, Values: vals, Color: colorEfficiency, Markers: true, Width: 3},
		},
	}
}

func energySeries(rows []models.EnergyMonth) ([]string, []Series) {
	cats := make([]string, len(rows))
	standard := make([]float64, len(rows))
	optimized := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Month
		standard[i] = r.Standard
		optimized[i] = r.Optimized
	}
	return cats, []Series{
		{Name: "Standard", Kind: SeriesLine, Values: standard, Color: colorStandard},
		{Name: "Optimized", Kind: SeriesLine, Values: optimized, Color: colorOptimized},
	}
}

// EnergyUsage is the overview comparison of standard and optimized usage,
// divided at the first projected month.
func EnergyUsage(rows []models.EnergyMonth) Spec {
	cats, series := energySeries(rows)
	s := Spec{
		Name:       NameEnergyOverview,
		Title:      "Energy Usage: Standard vs. AI-Optimized",
		Kind:       KindLine,
		XAxis:      "Month",
		YAxis:      "Energy (kWh)",
		Categories: cats,
		Series:     series,
	}
	if i := firstFuture(len(rows), func(i int) bool { return rows[i].Future }); i >= 0 {
		s.Divider = &Divider{Category: cats[i], Label: "AI Projections", Value: s.MaxValue(false)}
	}
	return s
}

// EnergyOptimization is the energy tab chart. When annualSaving is non-nil
// the last optimized point is annotated with it.
func EnergyOptimization(rows []models.EnergyMonth, annualSaving *float64) Spec {
	cats, series := energySeries(rows)
	s := Spec{
		Name:       NameEnergyOptimization,
		Title:      "Energy Usage Optimization",
		Kind:       KindLine,
		XAxis:      "Month",
		YAxis:      "Energy (kWh)",
		Categories: cats,
		Series:     series,
	}
	if annualSaving != nil && len(rows) > 0 {
		last := rows[len(rows)-1]
		s.Annotations = append(s.Annotations, Annotation{
			Category: last.Month,
			Value:    last.Optimized,
			Text:     "Projected Annual Savings: " + format.Money(*annualSaving),
		})
	}
	return s
}

// SatisfactionTrend plots quarterly satisfaction against the industry
// benchmark, divided at the first projected quarter.
func SatisfactionTrend(rows []models.SatisfactionQuarter, benchmark float64) Spec {
	cats := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Quarter
		vals[i] = r.Score
	}
	s := Spec{
		Name:       NameSatisfaction,
		Title:      "Tenant Satisfaction Score Trend",
		Kind:       KindLine,
		XAxis:      "Quarter",
		YAxis:      "Satisfaction Score (0-100)",
		Categories: cats,
		Series: []Series{
			{Name: "Satisfaction", Kind: SeriesLine, Values: vals, Color: colorScore, Markers: true, Width: 3},
		},
		References: []ReferenceLine{{Value: benchmark, Label: "Industry Average", Color: colorBenchmark}},
	}
	if i := firstFuture(len(rows), func(i int) bool { return rows[i].Future }); i >= 0 {
		s.Divider = &Divider{Category: cats[i], Label: "AI Projection", Value: s.MaxValue(false)}
	}
	return s
}

// Sentiment stacks positive, neutral and negative shares per category.
func Sentiment(rows []models.SentimentCategory) Spec {
	cats := make([]string, len(rows))
	pos := make([]float64, len(rows))
	neu := make([]float64, len(rows))
	neg := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Category
		pos[i] = r.Positive
		neu[i] = r.Neutral
		neg[i] = r.Negative
	}
	return Spec{
		Name:       NameSentiment,
		Title:      "Tenant Sentiment Analysis by Category",
		Kind:       KindStackedBar,
		XAxis:      "Category",
		YAxis:      "Percentage",
		Categories: cats,
		Series: []Series{
			{Name: "Positive", Kind: SeriesBar, Values: pos, Color: colorPositive},
			{Name: "Neutral", Kind: SeriesBar, Values: neu, Color: colorNeutral},
			{Name: "Negative", Kind: SeriesBar, Values: neg, Color: colorNegative},
		},
	}
}

// CostSavings is the pie of savings by category.
func CostSavings(rows []models.CostSavingsShare) Spec {
	cats := make([]string, len(rows))
	vals := make([]float64, len(rows))
	for i, r := range rows {
		cats[i] = r.Category
		vals[i] = r.Percent
	}
	return Spec{
		Name:       NameCostSavings,
		Title:      "Cost Savings Distribution",
		Kind:       KindPie,
		Categories: cats,
		Series:     []Series{{Name: "Share", Kind: SeriesBar, Values: vals}},
	}
}

// ROI draws investment and returns as grouped bars with cumulative ROI on
// the secondary axis. The ROI line is left out unless every year carries a
// computed value.
func ROI(rows []models.ROIYear) Spec {
	cats := make([]string, len(rows))
	inv := make([]float64, len(rows))
	ret := make([]float64, len(rows))
	roi := make([]float64, len(rows))
	complete := len(rows) > 0
	for i, r := range rows {
		cats[i] = strconv.Itoa(r.Year)
		inv[i] = r.Investment
		ret[i] = r.Returns
		if r.CumulativeROI == nil {
			complete = false
			continue
		}
		roi[i] = *r.CumulativeROI
	}
	s := Spec{
		Name:       NameROI,
		Title:      "AI Technology Investment ROI Analysis",
		Kind:       KindCombo,
		XAxis:      "Year",
		YAxis:      "Amount ($)",
		Categories: cats,
		Series: []Series{
			{Name: "Investment", Kind: SeriesBar, Values: inv, Color: colorInvestment},
			{Name: "Returns", Kind: SeriesBar, Values: ret, Color: colorReturns},
		},
	}
	if complete {
		s.YAxisSecondary = "ROI (%)"
		s.Series = append(s.Series, Series{
			Name: "Cumulative ROI %", Kind: SeriesLine, Values: roi,
			Color: colorROI, Secondary: true, Markers: true, Width: 2,
		})
	}
	return s
}
