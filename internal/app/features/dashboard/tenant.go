package dashboard

import (
	"html/template"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/charts"
	"github.com/dalemusser/propertypulse/internal/app/system/htmlsanitize"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
)

type tenantData struct {
	viewdata.BaseVM

	Satisfaction chartVM
	Sentiment    chartVM
	Metrics      []cardVM
	Insight      template.HTML
	Features     []cardVM
}

func tenantView(base viewdata.BaseVM) (string, any) {
	return "dashboard_tenant", tenantData{
		BaseVM:       base,
		Satisfaction: chartRef(charts.NameSatisfaction, ""),
		Sentiment:    chartRef(charts.NameSentiment, ""),
		Metrics:      cardVMs(sampledata.TenantMetrics()),
		Insight:      htmlsanitize.PrepareForDisplay(sampledata.SentimentInsight()),
		Features:     cardVMs(sampledata.TenantFeatures()),
	}
}
