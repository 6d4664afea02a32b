package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEnergyCmd(t *testing.T) {
	out, err := run(t, "energy", "--sqft", "25000", "--cost", "15000", "--tier", "basic")
	if err != nil {
		t.Fatalf("energy: %v", err)
	}
	for _, want := range []string{"$2,700", "$32,400", "$45,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestEnergyCmd_UnknownTier(t *testing.T) {
	_, err := run(t, "energy", "--tier", "Turbo")
	if err == nil || !strings.Contains(err.Error(), "Turbo") {
		t.Fatalf("err = %v, want unknown tier error", err)
	}
}

func TestImplementationCmd(t *testing.T) {
	out, err := run(t, "implementation", "--count", "5", "--tier", "standard", "--existing", "none")
	if err != nil {
		t.Fatalf("implementation: %v", err)
	}
	for _, want := range []string{"$375,000", "$275,000", "1.36 years", "$1,000,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestROICmd(t *testing.T) {
	out, err := run(t, "roi")
	if err != nil {
		t.Fatalf("roi: %v", err)
	}
	if !strings.Contains(out, "Cumulative ROI") {
		t.Errorf("missing header:\n%s", out)
	}
}

func TestMetricsCmd(t *testing.T) {
	out, err := run(t, "metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if !strings.Contains(out, "Energy reduction") {
		t.Errorf("missing energy reduction row:\n%s", out)
	}
}

func TestExportCmd(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "roi.csv")
	out, err := run(t, "export", "--dataset", "roi", "--out", dest)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "wrote") {
		t.Errorf("missing confirmation:\n%s", out)
	}

	b, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(b), "Year,Investment,Returns,Cumulative ROI (%)") {
		t.Errorf("unexpected csv:\n%s", b)
	}
}

func TestExportCmd_Stdout(t *testing.T) {
	out, err := run(t, "export", "--dataset", "alerts", "--out", "-")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if strings.Contains(out, "wrote") {
		t.Errorf("stdout export should not print a confirmation:\n%s", out)
	}
}

func TestExportCmd_Errors(t *testing.T) {
	if _, err := run(t, "export", "--dataset", "nope", "--out", "-"); err == nil {
		t.Error("expected error for unknown dataset")
	}
	if _, err := run(t, "export", "--format", "pdf", "--out", "-"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestChartCmd(t *testing.T) {
	out, err := run(t, "chart", "--name", "roi", "--out", "-")
	if err != nil {
		t.Fatalf("chart: %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("expected svg output, got %.200s", out)
	}

	if _, err := run(t, "chart", "--name", "nope", "--out", "-"); err == nil {
		t.Error("expected error for unknown chart")
	}
}
