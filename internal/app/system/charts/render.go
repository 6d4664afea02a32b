package charts

import (
	"fmt"
	"io"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 420
)

// headroom keeps the extreme points and their labels off the plot edges.
const headroom = 1.15

var (
	dividerColor = drawing.ColorFromHex("808080")
	dividerDash  = []float64{5, 5}
	referenceDot = []float64{2, 3}
)

// Renderer draws Specs as SVG with go-chart.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a Renderer, substituting defaults for non-positive sizes.
func NewRenderer(width, height int) Renderer {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Renderer{Width: width, Height: height}
}

// SVG validates s and writes it to w as an SVG document.
func (rd Renderer) SVG(w io.Writer, s Spec) (err error) {
	if err := s.Validate(); err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("charts: render %s: %v", s.Name, r)
		}
	}()

	switch s.Kind {
	case KindPie:
		pie := rd.pie(s)
		return pie.Render(chart.SVG, w)
	case KindStackedBar:
		sbc := rd.stacked(s)
		return sbc.Render(chart.SVG, w)
	case KindGroupedBar, KindLine, KindCombo:
		ch := rd.cartesian(s)
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
		return ch.Render(chart.SVG, w)
	default:
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidSpec, s.Kind)
	}
}

func colorOf(hex string, i int) drawing.Color {
	if hex == "" {
		hex = piePalette[i%len(piePalette)]
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func axisMax(v float64) float64 {
	if v <= 0 {
		return 1
	}
	return v * headroom
}

// axisMin is 0 unless the axis carries negative values.
func axisMin(v float64) float64 {
	return min(0, v) * headroom
}

func (rd Renderer) cartesian(s Spec) chart.Chart {
	n := len(s.Categories)
	// go-chart derives the x range from the ticks; the blank edge ticks keep
	// half a slot of room on each side for bars.
	ticks := make([]chart.Tick, 0, n+2)
	ticks = append(ticks, chart.Tick{Value: -0.5})
	for i, c := range s.Categories {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: c})
	}
	ticks = append(ticks, chart.Tick{Value: float64(n) - 0.5})

	top := s.MaxValue(false)
	for _, ref := range s.References {
		if ref.Value > top {
			top = ref.Value
		}
	}
	yMin, yMax := axisMin(s.MinValue(false)), axisMax(top)

	ch := chart.Chart{
		Title:  s.Title,
		Width:  rd.Width,
		Height: rd.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 50, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  s.XAxis,
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  s.YAxis,
			Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
		},
	}
	if s.YAxisSecondary != "" {
		ch.YAxisSecondary = chart.YAxis{
			Name:  s.YAxisSecondary,
			Range: &chart.ContinuousRange{Min: axisMin(s.MinValue(true)), Max: axisMax(s.MaxValue(true))},
		}
	}

	bars := 0
	for _, ser := range s.Series {
		if s.Kind == KindGroupedBar || (s.Kind == KindCombo && ser.Kind == SeriesBar) {
			bars++
		}
	}

	slot := 0
	for i, ser := range s.Series {
		axis := chart.YAxisPrimary
		if ser.Secondary {
			axis = chart.YAxisSecondary
		}
		isBar := s.Kind == KindGroupedBar || (s.Kind == KindCombo && ser.Kind == SeriesBar)
		if isBar {
			ch.Series = append(ch.Series, barSeries{
				name:   ser.Name,
				values: ser.Values,
				color:  colorOf(ser.Color, i),
				slot:   slot,
				count:  bars,
				axis:   axis,
			})
			slot++
			continue
		}
		ch.Series = append(ch.Series, lineSeries(ser, i, axis))
	}

	if d := s.Divider; d != nil {
		x := float64(s.CategoryIndex(d.Category))
		ch.Series = append(ch.Series,
			chart.ContinuousSeries{
				Name:    d.Label,
				XValues: []float64{x, x},
				YValues: []float64{yMin, yMax},
				Style: chart.Style{
					StrokeColor:     dividerColor,
					StrokeWidth:     1,
					StrokeDashArray: dividerDash,
				},
			},
			chart.AnnotationSeries{
				Annotations: []chart.Value2{{XValue: x, YValue: d.Value, Label: d.Label}},
			},
		)
	}

	for _, ref := range s.References {
		c := colorOf(ref.Color, 0)
		ch.Series = append(ch.Series, chart.ContinuousSeries{
			Name:    ref.Label,
			XValues: []float64{0, float64(n - 1)},
			YValues: []float64{ref.Value, ref.Value},
			Style: chart.Style{
				StrokeColor:     c,
				StrokeWidth:     1,
				StrokeDashArray: referenceDot,
			},
		})
	}

	if len(s.Annotations) > 0 {
		values := make([]chart.Value2, 0, len(s.Annotations))
		for _, a := range s.Annotations {
			values = append(values, chart.Value2{
				XValue: float64(s.CategoryIndex(a.Category)),
				YValue: a.Value,
				Label:  a.Text,
			})
		}
		ch.Series = append(ch.Series, chart.AnnotationSeries{Annotations: values})
	}
	return ch
}

func lineSeries(ser Series, i int, axis chart.YAxisType) chart.ContinuousSeries {
	xs := make([]float64, len(ser.Values))
	for j := range xs {
		xs[j] = float64(j)
	}
	width := ser.Width
	if width <= 0 {
		width = 2
	}
	c := colorOf(ser.Color, i)
	style := chart.Style{StrokeColor: c, StrokeWidth: width}
	if ser.Markers {
		style.DotColor = c
		style.DotWidth = 4
	}
	return chart.ContinuousSeries{
		Name:    ser.Name,
		XValues: xs,
		YValues: ser.Values,
		YAxis:   axis,
		Style:   style,
	}
}

// stacked draws one horizontal bar per category with each series as a
// segment, sizing bars so they fill the canvas height.
func (rd Renderer) stacked(s Spec) chart.StackedBarChart {
	const padTop, padBottom = 50, 20
	per := (rd.Height - padTop - padBottom) / len(s.Categories)
	barWidth := per * 3 / 5
	spacing := per - barWidth
	if barWidth < 1 {
		barWidth = 1
	}
	if spacing < 1 {
		spacing = 1
	}

	bars := make([]chart.StackedBar, len(s.Categories))
	for ci, cat := range s.Categories {
		values := make([]chart.Value, 0, len(s.Series))
		for si, ser := range s.Series {
			c := colorOf(ser.Color, si)
			values = append(values, chart.Value{
				Label: ser.Name,
				Value: ser.Values[ci],
				Style: chart.Style{FillColor: c, StrokeColor: c},
			})
		}
		bars[ci] = chart.StackedBar{Name: cat, Width: barWidth, Values: values}
	}
	return chart.StackedBarChart{
		Title:  s.Title,
		Width:  rd.Width,
		Height: rd.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: padTop, Left: 20, Right: 20, Bottom: padBottom},
		},
		BarSpacing:   spacing,
		IsHorizontal: true,
		Bars:         bars,
	}
}

func (rd Renderer) pie(s Spec) chart.PieChart {
	ser := s.Series[0]
	values := make([]chart.Value, len(s.Categories))
	for i, cat := range s.Categories {
		c := colorOf("", i)
		values[i] = chart.Value{
			Label: cat,
			Value: ser.Values[i],
			Style: chart.Style{FillColor: c},
		}
	}
	return chart.PieChart{
		Title:  s.Title,
		Width:  rd.Width,
		Height: rd.Height,
		Values: values,
	}
}
