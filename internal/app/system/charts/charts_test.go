package charts

import (
	"bytes"
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
)

func TestBuild_EveryNameValidates(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name)
			if err != nil {
				t.Fatalf("Build(%q): %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Name = %q, want %q", s.Name, name)
			}
			if err := s.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}

func TestBuild_Unknown(t *testing.T) {
	_, err := Build("nope")
	if !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("err = %v, want ErrUnknownChart", err)
	}
}

func TestMaintenanceByMonth_DividerAtFirstPrediction(t *testing.T) {
	s := MaintenanceByMonth(sampledata.Maintenance())
	if s.Kind != KindGroupedBar {
		t.Errorf("Kind = %q", s.Kind)
	}
	if len(s.Series) != 3 {
		t.Fatalf("series = %d, want 3", len(s.Series))
	}
	if s.Divider == nil {
		t.Fatal("expected divider")
	}
	if s.Divider.Category != "May" || s.Divider.Label != "AI Predictions" {
		t.Errorf("divider = %+v", *s.Divider)
	}
	if s.Divider.Value != s.MaxValue(false) {
		t.Errorf("divider value = %v, want max %v", s.Divider.Value, s.MaxValue(false))
	}
}

func TestMaintenanceByMonth_NoFutureNoDivider(t *testing.T) {
	rows := []models.MaintenanceMonth{{Month: "Jan", Predicted: 3, Actual: 2}}
	if s := MaintenanceByMonth(rows); s.Divider != nil {
		t.Errorf("unexpected divider %+v", *s.Divider)
	}
}

func TestEnergyOptimization_Annotation(t *testing.T) {
	rows := sampledata.Energy()
	annual := 132000.0
	s := EnergyOptimization(rows, &annual)
	if len(s.Annotations) != 1 {
		t.Fatalf("annotations = %d, want 1", len(s.Annotations))
	}
	a := s.Annotations[0]
	if a.Category != "Jul" || a.Value != rows[len(rows)-1].Optimized {
		t.Errorf("annotation placed at %s/%v", a.Category, a.Value)
	}
	if a.Text != "Projected Annual Savings: $132,000" {
		t.Errorf("text = %q", a.Text)
	}

	if s := EnergyOptimization(rows, nil); len(s.Annotations) != 0 {
		t.Errorf("expected no annotation without a saving")
	}
}

func TestSatisfactionTrend_Benchmark(t *testing.T) {
	s := SatisfactionTrend(sampledata.Satisfaction(), sampledata.IndustryAverageSatisfaction)
	if len(s.References) != 1 || s.References[0].Value != 75 {
		t.Fatalf("references = %+v", s.References)
	}
	if s.Divider == nil || s.Divider.Category != "Q4" {
		t.Errorf("divider = %+v", s.Divider)
	}
	if !s.Series[0].Markers {
		t.Error("satisfaction line should show markers")
	}
}

func TestROI_SecondaryLineOnlyWhenComplete(t *testing.T) {
	full, err := Build(NameROI)
	if err != nil {
		t.Fatal(err)
	}
	if len(full.Series) != 3 || !full.Series[2].Secondary {
		t.Fatalf("expected ROI line on secondary axis, got %+v", full.Series)
	}
	if full.YAxisSecondary == "" {
		t.Error("secondary axis name missing")
	}

	partial := ROI(sampledata.ROIInputs())
	if len(partial.Series) != 2 {
		t.Errorf("series = %d, want 2 without cumulative ROI", len(partial.Series))
	}
	if partial.YAxisSecondary != "" {
		t.Errorf("secondary axis = %q, want empty", partial.YAxisSecondary)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"no categories", Spec{Name: "x", Kind: KindLine, Series: []Series{{Name: "a"}}}},
		{"no series", Spec{Name: "x", Kind: KindLine, Categories: []string{"a"}}},
		{"length mismatch", Spec{Name: "x", Kind: KindLine, Categories: []string{"a", "b"},
			Series: []Series{{Name: "s", Values: []float64{1}}}}},
		{"pie with two series", Spec{Name: "x", Kind: KindPie, Categories: []string{"a"},
			Series: []Series{{Values: []float64{1}}, {Values: []float64{2}}}}},
		{"divider off axis", Spec{Name: "x", Kind: KindLine, Categories: []string{"a"},
			Series: []Series{{Values: []float64{1}}}, Divider: &Divider{Category: "z"}}},
		{"annotation off axis", Spec{Name: "x", Kind: KindLine, Categories: []string{"a"},
			Series: []Series{{Values: []float64{1}}}, Annotations: []Annotation{{Category: "z"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.spec.Validate(); !errors.Is(err, ErrInvalidSpec) {
				t.Errorf("Validate() = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestSpec_JSONShape(t *testing.T) {
	s, err := Build(NameEnergyOverview)
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`"kind":"line"`, `"categories":["Jan"`, `"divider":{"category":"May"`} {
		if !strings.Contains(string(b), want) {
			t.Errorf("JSON missing %s: %s", want, b)
		}
	}
}

func TestRenderer_SVG(t *testing.T) {
	rd := NewRenderer(0, 0)
	if rd.Width != DefaultWidth || rd.Height != DefaultHeight {
		t.Fatalf("defaults not applied: %+v", rd)
	}
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := Build(name)
			if err != nil {
				t.Fatal(err)
			}
			var buf bytes.Buffer
			if err := rd.SVG(&buf, s); err != nil {
				t.Fatalf("SVG: %v", err)
			}
			if !strings.Contains(buf.String(), "<svg") {
				t.Errorf("output is not SVG: %.80s", buf.String())
			}
		})
	}
}

func TestRenderer_SVGRejectsInvalid(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(400, 300).SVG(&buf, Spec{Name: "empty"})
	if !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("err = %v, want ErrInvalidSpec", err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes for an invalid spec", buf.Len())
	}
}

func TestSpec_MinValue(t *testing.T) {
	s, err := Build(NameROI)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.MinValue(false); got != 0 {
		t.Errorf("primary MinValue = %v, want 0", got)
	}
	if got := s.MinValue(true); got >= 0 {
		t.Errorf("secondary MinValue = %v, want the negative first-year ROI", got)
	}
}

var circleY = regexp.MustCompile(`<circle[^>]*\scy="(-?[0-9.]+)"`)

func TestRenderer_ROIKeepsNegativePointsInPlot(t *testing.T) {
	s, err := Build(NameROI)
	if err != nil {
		t.Fatal(err)
	}
	rd := NewRenderer(800, 420)

	ch := rd.cartesian(s)
	rng := ch.YAxisSecondary.Range
	for _, v := range s.Series[2].Values {
		if v < rng.GetMin() || v > rng.GetMax() {
			t.Errorf("ROI %.2f outside secondary axis [%.2f, %.2f]", v, rng.GetMin(), rng.GetMax())
		}
	}

	var buf bytes.Buffer
	if err := rd.SVG(&buf, s); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	dots := circleY.FindAllStringSubmatch(buf.String(), -1)
	if len(dots) < len(s.Series[2].Values) {
		t.Fatalf("found %d markers, want at least %d", len(dots), len(s.Series[2].Values))
	}
	// The x-axis ticks and axis name sit in the bottom 40px.
	plotBottom := float64(rd.Height - 40)
	for _, m := range dots {
		y, _ := strconv.ParseFloat(m[1], 64)
		if y < 0 || y > plotBottom {
			t.Errorf("marker at y=%v falls outside the plot area (bottom %v)", y, plotBottom)
		}
	}
}
