package dashboard

import (
	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/calc"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/format"
	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// roiRowVM is one line of the ROI table under the ROI chart.
type roiRowVM struct {
	Year          int
	Investment    string
	Returns       string
	CumulativeROI string
}

type financialData struct {
	viewdata.BaseVM

	Cards       []cardVM
	CostSavings chartVM
	ROI         chartVM
	ROIRows     []roiRowVM
	Value       []cardVM
	Calculator  implementationCalcData
}

func financialView(base viewdata.BaseVM) (string, any) {
	calcData, _ := implementationCalculator(inputval.PropertyCount.Default, models.ImplementationTiers[0], models.ExistingSystemTiers[0])
	calcData.Base = calcBase("Implementation Cost Calculator", base)

	return "dashboard_financial", financialData{
		BaseVM:      base,
		Cards:       cardVMs(sampledata.FinancialCards()),
		CostSavings: chartRef(charts.NameCostSavings, ""),
		ROI:         chartRef(charts.NameROI, ""),
		ROIRows:     roiRows(sampledata.ROIInputs()),
		Value:       cardVMs(sampledata.ValueBeyondSavings()),
		Calculator:  calcData,
	}
}

// roiRows formats the ROI table. When the cumulative ROI cannot be computed
// every row shows N/A in that column.
func roiRows(in []models.ROIYear) []roiRowVM {
	rows, err := calc.WithCumulativeROI(in)
	if err != nil {
		rows = in
	}
	out := make([]roiRowVM, len(rows))
	for i, y := range rows {
		cum := format.NA
		if y.CumulativeROI != nil {
			cum = format.Percent(*y.CumulativeROI)
		}
		out[i] = roiRowVM{
			Year:          y.Year,
			Investment:    format.Money(y.Investment),
			Returns:       format.Money(y.Returns),
			CumulativeROI: cum,
		}
	}
	return out
}
