package charts

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// groupWidth is the share of each category slot covered by its bar group.
const groupWidth = 0.8

// barSeries draws one member of a bar group. Bars are centred on integer x
// positions; slot and count place this series inside the group.
type barSeries struct {
	name   string
	values []float64
	color  drawing.Color
	slot   int
	count  int
	axis   chart.YAxisType
}

func (b barSeries) GetName() string                { return b.name }
func (b barSeries) GetYAxis() chart.YAxisType      { return b.axis }
func (b barSeries) Len() int                       { return len(b.values) }
func (b barSeries) GetValues(i int) (x, y float64) { return float64(i), b.values[i] }

func (b barSeries) GetStyle() chart.Style {
	return chart.Style{FillColor: b.color, StrokeColor: b.color, StrokeWidth: 1}
}

func (b barSeries) Validate() error {
	if b.count <= 0 || b.slot < 0 || b.slot >= b.count {
		return ErrInvalidSpec
	}
	return nil
}

func (b barSeries) Render(r chart.Renderer, canvas chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	n := len(b.values)
	if n == 0 {
		return
	}
	// one category spans canvas.Width()/n pixels when the x range is [-0.5, n-0.5]
	slotPx := float64(canvas.Width()) / float64(n)
	barPx := slotPx * groupWidth / float64(b.count)
	base := canvas.Bottom - yrange.Translate(0)

	r.SetFillColor(b.color)
	r.SetStrokeColor(b.color)
	r.SetStrokeWidth(1)
	for i, v := range b.values {
		center := float64(canvas.Left + xrange.Translate(float64(i)))
		left := int(center - slotPx*groupWidth/2 + float64(b.slot)*barPx)
		right := int(float64(left) + barPx)
		top := canvas.Bottom - yrange.Translate(v)
		if right-left < 1 {
			right = left + 1
		}
		r.MoveTo(left, top)
		r.LineTo(right, top)
		r.LineTo(right, base)
		r.LineTo(left, base)
		r.LineTo(left, top)
		r.Close()
		r.FillStroke()
	}
}
