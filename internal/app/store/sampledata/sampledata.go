// Package sampledata holds the fixed demonstration tables behind every
// dashboard view.
//
// Each generator builds its table from literals on every call and returns
// values the caller owns. Nothing here is cached or shared, so callers may
// mutate what they receive without affecting later calls.
package sampledata

import "github.com/dalemusser/propertypulse/internal/domain/models"

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

// Maintenance returns monthly predicted, actual and urgent issue counts.
// The last three months are projections.
func Maintenance() []models.MaintenanceMonth {
	predicted := []int{12, 15, 10, 8, 14, 16, 18}
	actual := []int{15, 14, 11, 8, 0, 0, 0}
	urgent := []int{3, 2, 1, 0, 0, 0, 0}

	out := make([]models.MaintenanceMonth, len(months))
	for i, m := range months {
		out[i] = models.MaintenanceMonth{
			Month:     m,
			Predicted: predicted[i],
			Actual:    actual[i],
			Urgent:    urgent[i],
			Future:    i >= 4,
		}
	}
	return out
}

// Energy returns monthly usage (kWh) without and with AI optimization.
// The last three months are projections.
func Energy() []models.EnergyMonth {
	standard := []float64{45000, 42000, 44000, 46000, 48000, 52000, 54000}
	optimized := []float64{45000, 40000, 38000, 37000, 36000, 35000, 34000}

	out := make([]models.EnergyMonth, len(months))
	for i, m := range months {
		out[i] = models.EnergyMonth{
			Month:     m,
			Standard:  standard[i],
			Optimized: optimized[i],
			Future:    i >= 4,
		}
	}
	return out
}

// Satisfaction returns quarterly tenant satisfaction scores. Q4 is projected.
func Satisfaction() []models.SatisfactionQuarter {
	return []models.SatisfactionQuarter{
		{Quarter: "Q1", Score: 76},
		{Quarter: "Q2", Score: 82},
		{Quarter: "Q3", Score: 89},
		{Quarter: "Q4", Score: 94, Future: true},
	}
}

// IndustryAverageSatisfaction is the benchmark drawn across the satisfaction chart.
const IndustryAverageSatisfaction = 75

// DetectionEfficiency returns AI detection efficiency for the historical months.
func DetectionEfficiency() []models.EfficiencyPoint {
	return []models.EfficiencyPoint{
		{Month: "Jan", Percent: 85},
		{Month: "Feb", Percent: 89},
		{Month: "Mar", Percent: 92},
		{Month: "Apr", Percent: 95},
	}
}

// CostSavings returns the share of AI-driven savings per category.
func CostSavings() []models.CostSavingsShare {
	return []models.CostSavingsShare{
		{Category: "Maintenance", Percent: 32},
		{Category: "Energy", Percent: 45},
		{Category: "Staffing", Percent: 15},
		{Category: "Operations", Percent: 8},
	}
}

// Sentiment returns the tenant feedback split by category.
func Sentiment() []models.SentimentCategory {
	return []models.SentimentCategory{
		{Category: "Maintenance", Positive: 78, Neutral: 15, Negative: 7},
		{Category: "Amenities", Positive: 85, Neutral: 10, Negative: 5},
		{Category: "Location", Positive: 92, Neutral: 6, Negative: 2},
		{Category: "Value", Positive: 68, Neutral: 22, Negative: 10},
		{Category: "Security", Positive: 75, Neutral: 15, Negative: 10},
		{Category: "Staff", Positive: 88, Neutral: 9, Negative: 3},
	}
}

// ROIInputs returns the yearly investment and returns projection. Cumulative
// ROI is left unset; calc.CumulativeROI derives it.
func ROIInputs() []models.ROIYear {
	investment := []float64{350000, 75000, 50000, 50000, 25000}
	returns := []float64{247500, 320000, 382500, 420000, 475000}

	out := make([]models.ROIYear, len(investment))
	for i := range investment {
		out[i] = models.ROIYear{
			Year:       2025 + i,
			Investment: investment[i],
			Returns:    returns[i],
		}
	}
	return out
}

// Alerts returns the current AI-generated alerts.
func Alerts() []models.Alert {
	return []models.Alert{
		{Property: "Los Altos Ranch Market", Issue: "HVAC system predicted failure within 14 days", Priority: models.PriorityHigh},
		{Property: "San Isidro Plaza", Issue: "Energy usage 15% above optimal levels", Priority: models.PriorityMedium},
		{Property: "Coronado Building", Issue: "Elevator maintenance recommended", Priority: models.PriorityLow},
	}
}

// Properties returns the property selector entries. The first entry is
// always models.AllProperties.
func Properties() []string {
	return []string{
		models.AllProperties,
		"San Isidro Plaza",
		"Los Altos Ranch Market",
		"Three Amigos",
		"Santa Fe Building 440",
		"1651 Galisteo",
		"Coronado Building",
		"Imaging Center",
		"Granada Square",
		"San Ignacio Apartments",
		"San Isidro Apartments",
		"Target Store",
		"Whole Foods",
	}
}

// Innovations returns the future AI innovation roadmap.
func Innovations() []models.InnovationEntry {
	return []models.InnovationEntry{
		{
			Name:        "Autonomous Building Systems",
			Description: "Self-regulating energy, water, and climate systems with zero human intervention needed.",
			Year:        2027,
		},
		{
			Name:        "Predictive Tenant Matching",
			Description: "AI algorithms that predict tenant-property fit with 98% accuracy, optimizing community ecosystem.",
			Year:        2028,
		},
		{
			Name:        "Digital Twin Integration",
			Description: "Complete virtual replicas of properties for scenario testing and optimization.",
			Year:        2029,
		},
		{
			Name:        "Blockchain Leasing",
			Description: "Smart contracts for all tenant relationships with automated enforcement and payments.",
			Year:        2030,
		},
		{
			Name:        "Community AI Concierge",
			Description: "AI-based community management system that handles tenant requests and fosters relationships.",
			Year:        2031,
		},
		{
			Name:        "Autonomous Infrastructure Repair",
			Description: "Robotic systems that automatically repair building issues without human intervention.",
			Year:        2033,
		},
	}
}

// MaintenanceTimeline returns upcoming predicted maintenance tasks, soonest first.
func MaintenanceTimeline() []models.MaintenanceTimelineItem {
	return []models.MaintenanceTimelineItem{
		{Task: "HVAC Compressor Replacement", Property: "Los Altos Ranch Market", DueInDays: 14, Severity: models.PriorityHigh},
		{Task: "Parking Lot Lighting Upgrade", Property: "San Isidro Plaza", DueInDays: 21, Severity: models.PriorityMedium},
		{Task: "Elevator Annual Maintenance", Property: "Coronado Building", DueInDays: 30, Severity: models.PriorityLow},
		{Task: "Roof Inspection", Property: "Granada Square", DueInDays: 45, Severity: models.PriorityMedium},
		{Task: "Plumbing System Check", Property: "San Ignacio Apartments", DueInDays: 60, Severity: models.PriorityLow},
	}
}

// IsKnownProperty reports whether name appears in Properties.
func IsKnownProperty(name string) bool {
	for _, p := range Properties() {
		if p == name {
			return true
		}
	}
	return false
}
