package dashboard

import (
	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
)

type timelineVM struct {
	Task      string
	Property  string
	DueInDays int
	Severity  string
	Class     string
	Color     string
}

type maintenanceData struct {
	viewdata.BaseVM

	Analysis   chartVM
	Efficiency chartVM
	Insights   []cardVM
	Benefits   []cardVM
	Timeline   []timelineVM
}

func maintenanceView(base viewdata.BaseVM) (string, any) {
	items := sampledata.MaintenanceTimeline()
	timeline := make([]timelineVM, len(items))
	for i, it := range items {
		timeline[i] = timelineVM{
			Task:      it.Task,
			Property:  it.Property,
			DueInDays: it.DueInDays,
			Severity:  string(it.Severity),
			Class:     it.Severity.Class(),
			Color:     it.Severity.Color(),
		}
	}

	return "dashboard_maintenance", maintenanceData{
		BaseVM:     base,
		Analysis:   chartRef(charts.NameMaintenanceAnalysis, ""),
		Efficiency: chartRef(charts.NameDetectionEfficiency, ""),
		Insights:   cardVMs(sampledata.MaintenanceInsights()),
		Benefits:   cardVMs(sampledata.MaintenanceBenefits()),
		Timeline:   timeline,
	}
}
