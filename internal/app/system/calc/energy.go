package calc

import (
	"fmt"

	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// MonthsPerYear annualizes monthly figures.
const MonthsPerYear = 12

// ImplementationCostPerSqFt is the energy-system install cost per square foot.
const ImplementationCostPerSqFt = 1.8

var optimizationFractions = map[models.OptimizationTier]float64{
	models.OptimizationBasic:    0.18,
	models.OptimizationStandard: 0.25,
	models.OptimizationAdvanced: 0.32,
}

// OptimizationFraction returns the savings fraction for an energy tier.
func OptimizationFraction(tier models.OptimizationTier) (float64, error) {
	f, ok := optimizationFractions[tier]
	if !ok {
		return 0, fmt.Errorf("optimization tier %q: %w", tier, ErrUnknownTier)
	}
	return f, nil
}

// AverageMonthlyEnergySaving is the mean of standard-optimized usage over
// every month except the first, which by construction has no saving.
func AverageMonthlyEnergySaving(rows []models.EnergyMonth) (float64, error) {
	if len(rows) < 2 {
		return 0, fmt.Errorf("average monthly saving over %d months: %w", len(rows), ErrNotComputable)
	}
	var total float64
	for _, r := range rows[1:] {
		total += r.Standard - r.Optimized
	}
	return total / float64(len(rows)-1), nil
}

// AnnualizedEnergySaving is AverageMonthlyEnergySaving times twelve.
func AnnualizedEnergySaving(rows []models.EnergyMonth) (float64, error) {
	avg, err := AverageMonthlyEnergySaving(rows)
	if err != nil {
		return 0, err
	}
	return avg * MonthsPerYear, nil
}

// EnergyReductionPercent is the overall usage reduction across all months:
// (sum(standard) - sum(optimized)) / sum(standard) * 100.
func EnergyReductionPercent(rows []models.EnergyMonth) (float64, error) {
	var std, opt float64
	for _, r := range rows {
		std += r.Standard
		opt += r.Optimized
	}
	v, err := ratio(std-opt, std)
	if err != nil {
		return 0, fmt.Errorf("energy reduction: %w", err)
	}
	return v * 100, nil
}

// EnergySavingsInput holds the Energy tab calculator sliders.
type EnergySavingsInput struct {
	SquareFeet  float64
	MonthlyCost float64
	Tier        models.OptimizationTier
}

// EnergySavings is the energy calculator result. ROIYears is nil when the
// annual saving is zero.
type EnergySavings struct {
	EnergySavingsInput

	SavingsFraction    float64
	MonthlySaving      float64
	AnnualSaving       float64
	ImplementationCost float64
	ROIYears           *float64
}

// EstimateEnergySavings runs the energy savings calculator. The only error
// is an unknown tier; a zero annual saving leaves ROIYears nil.
func EstimateEnergySavings(in EnergySavingsInput) (EnergySavings, error) {
	frac, err := OptimizationFraction(in.Tier)
	if err != nil {
		return EnergySavings{}, err
	}

	out := EnergySavings{
		EnergySavingsInput: in,
		SavingsFraction:    frac,
		MonthlySaving:      in.MonthlyCost * frac,
		ImplementationCost: in.SquareFeet * ImplementationCostPerSqFt,
	}
	out.AnnualSaving = out.MonthlySaving * MonthsPerYear

	if roi, err := ratio(out.ImplementationCost, out.AnnualSaving); err == nil {
		out.ROIYears = &roi
	}
	return out, nil
}

// ROI returns the payback period in years, or ErrNotComputable.
func (e EnergySavings) ROI() (float64, error) {
	if e.ROIYears == nil {
		return 0, fmt.Errorf("energy ROI period: %w", ErrNotComputable)
	}
	return *e.ROIYears, nil
}
