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

type energyData struct {
	viewdata.BaseVM

	Chart        chartVM
	Reduction    metricVM
	AnnualSaving metricVM
	Stats        []cardVM
	Technologies []cardVM
	Calculator   energyCalcData
}

func energyView(base viewdata.BaseVM) (string, any) {
	rows := sampledata.Energy()

	reduction := metricVM{Label: "Energy Reduction", Value: format.NA, Note: "Overall reduction in energy usage"}
	if v, err := calc.EnergyReductionPercent(rows); err == nil {
		reduction.Value = format.Percent(v)
	}

	annual := metricVM{Label: "Projected Annual Savings", Value: format.NA, Note: "From the optimized usage forecast"}
	if v, err := calc.AnnualizedEnergySaving(rows); err == nil {
		annual.Value = format.Money(v)
	}

	// Defaults always compute; the form shows N/A if they ever stop doing so.
	calcData, _ := energyCalculator(inputval.SquareFeet.Default, inputval.MonthlyCost.Default, models.OptimizationTiers[0])
	calcData.Base = calcBase("Energy Savings Calculator", base)

	return "dashboard_energy", energyData{
		BaseVM:       base,
		Chart:        chartRef(charts.NameEnergyOptimization, ""),
		Reduction:    reduction,
		AnnualSaving: annual,
		Stats:        cardVMs(sampledata.EnergyStaticStats()),
		Technologies: cardVMs(sampledata.EnergyTechnologies()),
		Calculator:   calcData,
	}
}
