// internal/domain/models/series.go
package models

// MaintenanceMonth is one row of the predictive-maintenance series.
// Actual and Urgent are zero for projected months.
type MaintenanceMonth struct {
	Month     string `json:"month"`
	Predicted int    `json:"predicted"`
	Actual    int    `json:"actual"`
	Urgent    int    `json:"urgent"`
	Future    bool   `json:"future"`
}

// EnergyMonth is one row of the energy usage series, in kWh.
type EnergyMonth struct {
	Month     string  `json:"month"`
	Standard  float64 `json:"standard"`
	Optimized float64 `json:"optimized"`
	Future    bool    `json:"future"`
}

// SatisfactionQuarter is one tenant-satisfaction score (0-100).
type SatisfactionQuarter struct {
	Quarter string  `json:"quarter"`
	Score   float64 `json:"score"`
	Future  bool    `json:"future"`
}

// EfficiencyPoint is the AI detection efficiency for a historical month.
type EfficiencyPoint struct {
	Month   string  `json:"month"`
	Percent float64 `json:"percent"`
}

// CostSavingsShare is one slice of the cost-savings breakdown, in percent.
type CostSavingsShare struct {
	Category string  `json:"category"`
	Percent  float64 `json:"percent"`
}

// SentimentCategory is the feedback split for one category. The three
// percentages sum to 100.
type SentimentCategory struct {
	Category string  `json:"category"`
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Total returns Positive+Neutral+Negative.
func (s SentimentCategory) Total() float64 {
	return s.Positive + s.Neutral + s.Negative
}

// ROIYear is one year of the investment/returns projection. CumulativeROI
// is derived and is nil until computed (or when not computable).
type ROIYear struct {
	Year          int      `json:"year"`
	Investment    float64  `json:"investment"`
	Returns       float64  `json:"returns"`
	CumulativeROI *float64 `json:"cumulative_roi,omitempty"`
}
