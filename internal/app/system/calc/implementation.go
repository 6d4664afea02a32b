package calc

import (
	"fmt"

	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// NetBenefitYears is the horizon of the net-benefit figure.
const NetBenefitYears = 5

type tierEconomics struct {
	baseCost float64 // per property
	savings  float64 // per property per year
}

var implementationTiers = map[models.ImplementationTier]tierEconomics{
	models.ImplementationBasic:    {baseCost: 45000, savings: 35000},
	models.ImplementationStandard: {baseCost: 75000, savings: 55000},
	models.ImplementationAdvanced: {baseCost: 120000, savings: 85000},
}

var existingDiscounts = map[models.ExistingSystemTier]float64{
	models.ExistingNone:     0,
	models.ExistingStandard: 0.15,
	models.ExistingModern:   0.30,
}

// ExistingSystemDiscount returns the fraction taken off the base cost.
func ExistingSystemDiscount(tier models.ExistingSystemTier) (float64, error) {
	d, ok := existingDiscounts[tier]
	if !ok {
		return 0, fmt.Errorf("existing system tier %q: %w", tier, ErrUnknownTier)
	}
	return d, nil
}

// ImplementationInput holds the Financial Impact calculator controls.
type ImplementationInput struct {
	Properties int
	Tier       models.ImplementationTier
	Existing   models.ExistingSystemTier
}

// ImplementationEstimate is the implementation cost calculator result.
// ROIPeriod is nil when annual savings are zero.
type ImplementationEstimate struct {
	ImplementationInput

	BaseCostPerProperty float64
	SavingsPerProperty  float64
	Discount            float64
	BaseCost            float64
	DiscountAmount      float64
	TotalCost           float64
	AnnualSavings       float64
	ROIPeriod           *float64
	FiveYearNetBenefit  float64
}

// EstimateImplementation runs the implementation cost calculator.
func EstimateImplementation(in ImplementationInput) (ImplementationEstimate, error) {
	econ, ok := implementationTiers[in.Tier]
	if !ok {
		return ImplementationEstimate{}, fmt.Errorf("implementation tier %q: %w", in.Tier, ErrUnknownTier)
	}
	discount, err := ExistingSystemDiscount(in.Existing)
	if err != nil {
		return ImplementationEstimate{}, err
	}

	count := float64(in.Properties)
	out := ImplementationEstimate{
		ImplementationInput: in,
		BaseCostPerProperty: econ.baseCost,
		SavingsPerProperty:  econ.savings,
		Discount:            discount,
		BaseCost:            econ.baseCost * count,
		AnnualSavings:       econ.savings * count,
	}
	out.DiscountAmount = out.BaseCost * discount
	out.TotalCost = out.BaseCost - out.DiscountAmount
	out.FiveYearNetBenefit = out.AnnualSavings*NetBenefitYears - out.TotalCost

	if p, err := ratio(out.TotalCost, out.AnnualSavings); err == nil {
		out.ROIPeriod = &p
	}
	return out, nil
}

// ROI returns the payback period in years, or ErrNotComputable.
func (e ImplementationEstimate) ROI() (float64, error) {
	if e.ROIPeriod == nil {
		return 0, fmt.Errorf("implementation ROI period: %w", ErrNotComputable)
	}
	return *e.ROIPeriod, nil
}

// ROIBand classifies a payback period for display.
type ROIBand int

const (
	ROIFavorable  ROIBand = iota // under 1.5 years
	ROIAcceptable                // 1.5 up to 3 years
	ROIPhasing                   // 3 years or more
)

// ClassifyROIPeriod maps a payback period in years to its band.
func ClassifyROIPeriod(years float64) ROIBand {
	switch {
	case years < 1.5:
		return ROIFavorable
	case years < 3:
		return ROIAcceptable
	default:
		return ROIPhasing
	}
}

// Level is the notice style for the band: "success", "info" or "warning".
func (b ROIBand) Level() string {
	switch b {
	case ROIFavorable:
		return "success"
	case ROIAcceptable:
		return "info"
	default:
		return "warning"
	}
}

// Message is the recommendation shown with the band.
func (b ROIBand) Message() string {
	switch b {
	case ROIFavorable:
		return "This implementation has an excellent ROI timeframe!"
	case ROIAcceptable:
		return "This implementation has a solid ROI timeframe."
	default:
		return "Consider phased implementation to improve ROI timeframe."
	}
}
