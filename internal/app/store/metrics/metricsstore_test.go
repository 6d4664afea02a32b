package metricsstore_test

import (
	"math"
	"testing"

	metricsstore "github.com/dalemusser/propertypulse/internal/app/store/metrics"
)

func TestFetchDerived(t *testing.T) {
	d := metricsstore.FetchDerived()

	if len(d.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", d.Errors)
	}
	if d.EnergyReductionPercent == nil || *d.EnergyReductionPercent <= 0 {
		t.Errorf("EnergyReductionPercent: got %v, want a positive value", d.EnergyReductionPercent)
	}
	if d.AverageMonthlySaving == nil || d.AnnualEnergySaving == nil {
		t.Fatal("energy savings should be computable")
	}
	if got, want := *d.AnnualEnergySaving, *d.AverageMonthlySaving*12; math.Abs(got-want) > 1e-9 {
		t.Errorf("AnnualEnergySaving: got %v, want %v", got, want)
	}
	if len(d.CumulativeROI) != len(d.ROIYears) {
		t.Errorf("CumulativeROI has %d entries for %d years", len(d.CumulativeROI), len(d.ROIYears))
	}
}

func TestFetchDerived_Idempotent(t *testing.T) {
	a := metricsstore.FetchDerived()
	b := metricsstore.FetchDerived()
	if *a.EnergyReductionPercent != *b.EnergyReductionPercent {
		t.Error("two fetches disagree")
	}
	for i := range a.CumulativeROI {
		if a.CumulativeROI[i] != b.CumulativeROI[i] {
			t.Errorf("CumulativeROI[%d]: %v vs %v", i, a.CumulativeROI[i], b.CumulativeROI[i])
		}
	}
}
