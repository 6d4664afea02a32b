// Package charts describes dashboard charts as plain data and renders them
// to SVG.
//
// A Spec is independent of any drawing library: the JSON API serves it as-is
// and the SVG renderer translates it into go-chart values. Categories index
// the x axis; every series carries one value per category.
package charts

import (
	"errors"
	"fmt"
)

// Kind selects the overall chart layout.
type Kind string

const (
	KindGroupedBar Kind = "grouped_bar"
	KindStackedBar Kind = "stacked_bar"
	KindLine       Kind = "line"
	KindPie        Kind = "pie"
	KindCombo      Kind = "combo"
)

// SeriesKind selects how a single series is drawn inside a combo chart.
type SeriesKind string

const (
	SeriesBar  SeriesKind = "bar"
	SeriesLine SeriesKind = "line"
)

// Series is one named run of values aligned with Spec.Categories.
type Series struct {
	Name      string     `json:"name"`
	Kind      SeriesKind `json:"kind"`
	Values    []float64  `json:"values"`
	Color     string     `json:"color,omitempty"`
	Secondary bool       `json:"secondary,omitempty"`
	Markers   bool       `json:"markers,omitempty"`
	Width     float64    `json:"width,omitempty"`
}

// Annotation labels a point on the chart.
type Annotation struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Text     string  `json:"text"`
}

// Divider is a dashed vertical line drawn at Category, separating
// historical from projected data.
type Divider struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
}

// ReferenceLine is a dotted horizontal line at Value across the whole chart.
type ReferenceLine struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
	Color string  `json:"color,omitempty"`
}

// Spec is a complete, renderable chart description.
type Spec struct {
	Name           string          `json:"name"`
	Title          string          `json:"title"`
	Kind           Kind            `json:"kind"`
	XAxis          string          `json:"x_axis,omitempty"`
	YAxis          string          `json:"y_axis,omitempty"`
	YAxisSecondary string          `json:"y_axis_secondary,omitempty"`
	Categories     []string        `json:"categories"`
	Series         []Series        `json:"series"`
	Divider        *Divider        `json:"divider,omitempty"`
	Annotations    []Annotation    `json:"annotations,omitempty"`
	References     []ReferenceLine `json:"references,omitempty"`
}

// ErrInvalidSpec reports a Spec whose series do not line up with its
// categories or whose markers point at unknown categories.
var ErrInvalidSpec = errors.New("charts: invalid spec")

// Validate checks the structural invariants every renderer relies on.
func (s Spec) Validate() error {
	if len(s.Categories) == 0 {
		return fmt.Errorf("%w: %s has no categories", ErrInvalidSpec, s.Name)
	}
	if len(s.Series) == 0 {
		return fmt.Errorf("%w: %s has no series", ErrInvalidSpec, s.Name)
	}
	for _, ser := range s.Series {
		if len(ser.Values) != len(s.Categories) {
			return fmt.Errorf("%w: %s series %q has %d values for %d categories",
				ErrInvalidSpec, s.Name, ser.Name, len(ser.Values), len(s.Categories))
		}
	}
	if s.Kind == KindPie && len(s.Series) != 1 {
		return fmt.Errorf("%w: pie chart %s needs exactly one series", ErrInvalidSpec, s.Name)
	}
	if s.Divider != nil && s.CategoryIndex(s.Divider.Category) < 0 {
		return fmt.Errorf("%w: divider category %q not found", ErrInvalidSpec, s.Divider.Category)
	}
	for _, a := range s.Annotations {
		if s.CategoryIndex(a.Category) < 0 {
			return fmt.Errorf("%w: annotation category %q not found", ErrInvalidSpec, a.Category)
		}
	}
	return nil
}

// CategoryIndex returns the x position of name, or -1.
func (s Spec) CategoryIndex(name string) int {
	for i, c := range s.Categories {
		if c == name {
			return i
		}
	}
	return -1
}

// MaxValue returns the largest value across all series drawn on the
// given axis.
func (s Spec) MaxValue(secondary bool) float64 {
	var top float64
	for _, ser := range s.Series {
		if ser.Secondary != secondary {
			continue
		}
		for _, v := range ser.Values {
			if v > top {
				top = v
			}
		}
	}
	return top
}

// MinValue returns the smallest value across all series drawn on the
// given axis, or 0 when none is negative.
func (s Spec) MinValue(secondary bool) float64 {
	var bottom float64
	for _, ser := range s.Series {
		if ser.Secondary != secondary {
			continue
		}
		for _, v := range ser.Values {
			if v < bottom {
				bottom = v
			}
		}
	}
	return bottom
}
