package dashboard

import (
	"fmt"
	"net/http"

	"github.com/dalemusser/propertypulse/internal/app/system/calc"
	"github.com/dalemusser/propertypulse/internal/app/system/format"
	"github.com/dalemusser/propertypulse/internal/app/system/formutil"
	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// option is one entry of a tier selector.
type option struct {
	Value    string
	Selected bool
}

func options[T ~string](all []T, selected T) []option {
	out := make([]option, len(all))
	for i, v := range all {
		out[i] = option{Value: string(v), Selected: v == selected}
	}
	return out
}

// calcBase fills the form fields of a calculator embedded in a full page.
func calcBase(title string, base viewdata.BaseVM) formutil.Base {
	return formutil.Base{
		Title:       title,
		BackURL:     base.BackURL,
		CurrentPath: base.CurrentPath,
		CSRFToken:   base.CSRFToken,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Energy savings calculator                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

type energyCalcData struct {
	formutil.Base

	SqftSlider  inputval.Slider
	CostSlider  inputval.Slider
	SquareFeet  int
	MonthlyCost int
	Tiers       []option

	MonthlySaving      string
	AnnualSaving       string
	ImplementationCost string
	ROIPeriod          string
}

func energyCalculator(sqft, cost int, tier models.OptimizationTier) (energyCalcData, error) {
	data := energyCalcData{
		SqftSlider:         inputval.SquareFeet,
		CostSlider:         inputval.MonthlyCost,
		SquareFeet:         sqft,
		MonthlyCost:        cost,
		Tiers:              options(models.OptimizationTiers, tier),
		MonthlySaving:      format.NA,
		AnnualSaving:       format.NA,
		ImplementationCost: format.NA,
		ROIPeriod:          format.NA,
	}

	est, err := calc.EstimateEnergySavings(calc.EnergySavingsInput{
		SquareFeet:  float64(sqft),
		MonthlyCost: float64(cost),
		Tier:        tier,
	})
	if err != nil {
		return data, err
	}

	data.MonthlySaving = format.Money(est.MonthlySaving)
	data.AnnualSaving = format.Money(est.AnnualSaving)
	data.ImplementationCost = format.Money(est.ImplementationCost)
	data.ROIPeriod = format.OptionalYears(est.ROIYears, 1)
	return data, nil
}

// ServeEnergyCalculator handles the Energy tab calculator form and returns
// the result partial.
func (h *Handler) ServeEnergyCalculator(w http.ResponseWriter, r *http.Request) {
	sqft := inputval.SquareFeet.Parse(r.PostFormValue(inputval.SquareFeet.Name))
	cost := inputval.MonthlyCost.Parse(r.PostFormValue(inputval.MonthlyCost.Name))
	rawTier := r.PostFormValue("tier")
	tier, known := inputval.OptimizationTier(rawTier)

	data, err := energyCalculator(sqft, cost, tier)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "energy calculator failed", err,
			"Could not compute energy savings.", "/dashboard/energy")
		return
	}
	formutil.SetBase(&data.Base, r, "Energy Savings Calculator", "/dashboard/energy")
	if !known {
		data.SetError(fmt.Sprintf("Unknown optimization level %q; showing %s.", rawTier, tier))
	}

	templates.RenderSnippet(w, "energy_calculator", data)

	h.Log.Debug("energy calculator served",
		zap.Int("sqft", sqft),
		zap.Int("cost", cost),
		zap.String("tier", string(tier)),
	)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Implementation cost calculator                                             |
*─────────────────────────────────────────────────────────────────────────────*/

type implementationCalcData struct {
	formutil.Base

	CountSlider inputval.Slider
	Count       int
	Tiers       []option
	Existing    []option

	BaseCost       string
	DiscountAmount string
	TotalCost      string
	AnnualSavings  string
	ROIPeriod      string
	NetBenefit     string

	// Band is empty when the payback period is not computable.
	BandLevel   string
	BandMessage string
}

func implementationCalculator(count int, tier models.ImplementationTier, existing models.ExistingSystemTier) (implementationCalcData, error) {
	data := implementationCalcData{
		CountSlider:    inputval.PropertyCount,
		Count:          count,
		Tiers:          options(models.ImplementationTiers, tier),
		Existing:       options(models.ExistingSystemTiers, existing),
		BaseCost:       format.NA,
		DiscountAmount: format.NA,
		TotalCost:      format.NA,
		AnnualSavings:  format.NA,
		ROIPeriod:      format.NA,
		NetBenefit:     format.NA,
	}

	est, err := calc.EstimateImplementation(calc.ImplementationInput{
		Properties: count,
		Tier:       tier,
		Existing:   existing,
	})
	if err != nil {
		return data, err
	}

	data.BaseCost = format.Money(est.BaseCost)
	data.DiscountAmount = format.Money(est.DiscountAmount)
	data.TotalCost = format.Money(est.TotalCost)
	data.AnnualSavings = format.Money(est.AnnualSavings)
	data.ROIPeriod = format.OptionalYears(est.ROIPeriod, 2)
	data.NetBenefit = format.Money(est.FiveYearNetBenefit)
	if years, err := est.ROI(); err == nil {
		band := calc.ClassifyROIPeriod(years)
		data.BandLevel = band.Level()
		data.BandMessage = band.Message()
	}
	return data, nil
}

// ServeImplementationCalculator handles the Financial Impact calculator form
// and returns the result partial.
func (h *Handler) ServeImplementationCalculator(w http.ResponseWriter, r *http.Request) {
	count := inputval.PropertyCount.Parse(r.PostFormValue(inputval.PropertyCount.Name))
	rawTier := r.PostFormValue("tier")
	rawExisting := r.PostFormValue("existing")
	tier, tierKnown := inputval.ImplementationTier(rawTier)
	existing, existingKnown := inputval.ExistingSystemTier(rawExisting)

	data, err := implementationCalculator(count, tier, existing)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "implementation calculator failed", err,
			"Could not compute implementation cost.", "/dashboard/financial")
		return
	}
	formutil.SetBase(&data.Base, r, "Implementation Cost Calculator", "/dashboard/financial")
	if !tierKnown {
		data.AddError(fmt.Sprintf("Unknown implementation level %q; showing %s.", rawTier, tier))
	}
	if !existingKnown {
		data.AddError(fmt.Sprintf("Unknown existing system %q; showing %s.", rawExisting, existing))
	}

	templates.RenderSnippet(w, "implementation_calculator", data)

	h.Log.Debug("implementation calculator served",
		zap.Int("count", count),
		zap.String("tier", string(tier)),
		zap.String("existing", string(existing)),
	)
}
