// Package inputval parses dashboard widget inputs. Sliders are clamped to
// their bounds and snapped to their step, so handlers never see a value the
// browser control could not have produced.
package inputval

import (
	"math"
	"strconv"
	"strings"

	"github.com/dalemusser/propertypulse/internal/domain/models"
)

// Slider describes an integer range input.
type Slider struct {
	Name    string
	Label   string
	Min     int
	Max     int
	Step    int
	Default int
}

// Dashboard sliders.
var (
	SquareFeet    = Slider{Name: "sqft", Label: "Property Size (sq ft)", Min: 5000, Max: 100000, Step: 1000, Default: 25000}
	MonthlyCost   = Slider{Name: "cost", Label: "Current Monthly Energy Cost ($)", Min: 1000, Max: 50000, Step: 500, Default: 15000}
	PropertyCount = Slider{Name: "count", Label: "Number of Properties", Min: 1, Max: 20, Step: 1, Default: 5}
	Horizon       = Slider{Name: "horizon", Label: "Time Horizon (Years)", Min: 1, Max: 10, Step: 1, Default: 5}
)

// Clamp bounds v to [Min, Max] and snaps it to the nearest step from Min.
func (s Slider) Clamp(v int) int {
	if v <= s.Min {
		return s.Min
	}
	if v >= s.Max {
		return s.Max
	}
	if s.Step > 1 {
		steps := math.Round(float64(v-s.Min) / float64(s.Step))
		v = s.Min + int(steps)*s.Step
		if v > s.Max {
			v = s.Max
		}
	}
	return v
}

// Parse reads raw as a number and clamps it. Blank or unparsable input
// yields Default.
func (s Slider) Parse(raw string) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.Default
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return s.Default
	}
	if f > float64(math.MaxInt32) {
		return s.Max
	}
	if f < float64(math.MinInt32) {
		return s.Min
	}
	return s.Clamp(int(math.Round(f)))
}

// InRange reports whether v lies inside the slider bounds.
func (s Slider) InRange(v int) bool {
	return v >= s.Min && v <= s.Max
}

// OptimizationTier parses a tier name, case-insensitively. Unknown values
// yield the first option and false. A blank value is not an error.
func OptimizationTier(raw string) (models.OptimizationTier, bool) {
	return matchTier(raw, models.OptimizationTiers)
}

// ImplementationTier parses an implementation tier label. The short form
// ("standard") matches "Standard (Monitoring + Automation)".
func ImplementationTier(raw string) (models.ImplementationTier, bool) {
	return matchTier(raw, models.ImplementationTiers)
}

// ExistingSystemTier parses an existing-system label. The short form
// ("modern") matches "Modern/Advanced".
func ExistingSystemTier(raw string) (models.ExistingSystemTier, bool) {
	return matchTier(raw, models.ExistingSystemTiers)
}

func matchTier[T ~string](raw string, options []T) (T, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return options[0], true
	}
	for _, t := range options {
		if strings.EqualFold(raw, string(t)) || strings.EqualFold(raw, shortLabel(string(t))) {
			return t, true
		}
	}
	return options[0], false
}

// shortLabel is the label up to the first " (" or "/".
func shortLabel(label string) string {
	if i := strings.IndexAny(label, "(/"); i > 0 {
		return strings.TrimSpace(label[:i])
	}
	return label
}
