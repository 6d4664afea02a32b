package export_test

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/dalemusser/propertypulse/internal/app/features/export"
	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	"github.com/dalemusser/propertypulse/internal/testutil"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *export.Handler {
	t.Helper()
	logger := zap.NewNop()
	return export.NewHandler(errorsfeature.NewErrorLogger(logger), logger)
}

func get(h *export.Handler, file string) *testutil.ResponseRecorder {
	req := testutil.WithChiURLParam(testutil.NewRequest("GET", "/export/"+file), "file", file)
	rec := testutil.NewRecorder()
	h.ServeDataset(rec, req)
	return rec
}

func TestServeDataset_CSV(t *testing.T) {
	h := newTestHandler(t)

	rec := get(h, "energy.csv")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertHeader(t, "Content-Type", "text/csv")
	rec.AssertHeader(t, "Content-Disposition", `attachment; filename="energy.csv"`)
	rec.AssertContains(t, "Month,Standard (kWh),AI-Optimized (kWh),Projected")
}

func TestServeDataset_XLSX(t *testing.T) {
	h := newTestHandler(t)

	rec := get(h, "roi.xlsx")

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertHeader(t, "Content-Type", "application/vnd.openxmlformats")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	rows, err := f.GetRows("Return on Investment")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 6 {
		t.Errorf("got %d rows, want header plus 5 years", len(rows))
	}
}

func TestServeDataset_NotFound(t *testing.T) {
	h := newTestHandler(t)

	for _, file := range []string{"tenants.csv", "energy.pdf", "energy"} {
		t.Run(file, func(t *testing.T) {
			rec := get(h, file)
			rec.AssertStatus(t, http.StatusNotFound)
		})
	}
}
