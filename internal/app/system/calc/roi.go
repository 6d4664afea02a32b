package calc

import (
	"fmt"

	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// CumulativeROI returns, for each year i, the running return on investment
// in percent: (sum returns[0..i] - sum investment[0..i]) / sum investment[0..i] * 100.
//
// If any prefix has zero cumulative investment the whole series is
// rejected with ErrNotComputable; no partial series is returned.
func CumulativeROI(investment, returns []float64) ([]float64, error) {
	if len(investment) != len(returns) {
		return nil, fmt.Errorf("cumulative ROI: %d investments vs %d returns: %w",
			len(investment), len(returns), ErrLengthMismatch)
	}

	out := make([]float64, len(investment))
	var invested, returned float64
	for i := range investment {
		invested += investment[i]
		returned += returns[i]
		v, err := ratio(returned-invested, invested)
		if err != nil {
			return nil, fmt.Errorf("cumulative ROI at index %d: %w", i, err)
		}
		out[i] = v * 100
	}
	return out, nil
}

// WithCumulativeROI returns a copy of rows with CumulativeROI filled in.
// The input is not modified.
func WithCumulativeROI(rows []models.ROIYear) ([]models.ROIYear, error) {
	investment := make([]float64, len(rows))
	returns := make([]float64, len(rows))
	for i, r := range rows {
		investment[i] = r.Investment
		returns[i] = r.Returns
	}

	series, err := CumulativeROI(investment, returns)
	if err != nil {
		return nil, err
	}

	out := make([]models.ROIYear, len(rows))
	for i, r := range rows {
		v := series[i]
		r.CumulativeROI = &v
		out[i] = r
	}
	return out, nil
}
