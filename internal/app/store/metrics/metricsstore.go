package metricsstore

import (
	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/calc"
)

// Derived is the set of scalars computed from the sample series. A nil
// field means the figure is not computable from the current data.
type Derived struct {
	EnergyReductionPercent *float64  `json:"energy_reduction_percent"`
	AverageMonthlySaving   *float64  `json:"average_monthly_energy_saving"`
	AnnualEnergySaving     *float64  `json:"annual_energy_saving"`
	CumulativeROI          []float64 `json:"cumulative_roi_percent"`
	ROIYears               []int     `json:"roi_years"`
	Errors                 []string  `json:"errors,omitempty"`
}

// FetchDerived computes the dashboard scalars from the sample series.
// Intentionally tolerant: a calculator error leaves that figure nil and is
// reported in Errors.
func FetchDerived() Derived {
	var out Derived

	energy := sampledata.Energy()
	if v, err := calc.EnergyReductionPercent(energy); err == nil {
		out.EnergyReductionPercent = &v
	} else {
		out.Errors = append(out.Errors, err.Error())
	}
	if v, err := calc.AverageMonthlyEnergySaving(energy); err == nil {
		out.AverageMonthlySaving = &v
	} else {
		out.Errors = append(out.Errors, err.Error())
	}
	if v, err := calc.AnnualizedEnergySaving(energy); err == nil {
		out.AnnualEnergySaving = &v
	} else {
		out.Errors = append(out.Errors, err.Error())
	}

	rows := sampledata.ROIInputs()
	out.ROIYears = make([]int, len(rows))
	for i, y := range rows {
		out.ROIYears[i] = y.Year
	}
	if withROI, err := calc.WithCumulativeROI(rows); err == nil {
		out.CumulativeROI = make([]float64, len(withROI))
		for i, y := range withROI {
			out.CumulativeROI[i] = *y.CumulativeROI
		}
	} else {
		out.Errors = append(out.Errors, err.Error())
	}

	return out
}
