package dashboard

import (
	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

type overviewData struct {
	viewdata.BaseVM

	Cards       []cardVM
	Maintenance chartVM
	Energy      chartVM
	Alerts      []alertVM
	Innovations []models.InnovationEntry
}

func overviewView(base viewdata.BaseVM) (string, any) {
	return "dashboard_overview", overviewData{
		BaseVM:      base,
		Cards:       cardVMs(sampledata.OverviewCards()),
		Maintenance: chartRef(charts.NameMaintenanceOverview, sampledata.MaintenanceAccuracyNote),
		Energy:      chartRef(charts.NameEnergyOverview, sampledata.EnergyOverviewNote),
		Alerts:      alertVMs(sampledata.Alerts()),
		Innovations: sampledata.Innovations(),
	}
}
