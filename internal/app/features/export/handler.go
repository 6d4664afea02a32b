// internal/app/features/export/handler.go
package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"

	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	"github.com/dalemusser/propertypulse/internal/app/store/datasets"
	"github.com/dalemusser/propertypulse/internal/app/system/reqlog"
	"github.com/dalemusser/propertypulse/internal/app/system/tabular"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		ErrLog: errLog,
		Log:    logger,
	}
}

// ServeDataset handles GET /export/{file}, where file is "<dataset>.csv" or
// "<dataset>.xlsx".
func (h *Handler) ServeDataset(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	ext := path.Ext(file)
	name := strings.TrimSuffix(file, ext)

	format, err := tabular.ParseFormat(strings.TrimPrefix(ext, "."))
	if err != nil {
		errorsfeature.RenderNotFound(w, r, "Exports are available as .csv or .xlsx.")
		return
	}
	tbl, err := datasets.Table(name)
	if errors.Is(err, datasets.ErrUnknownDataset) {
		errorsfeature.RenderNotFound(w, r, "Unknown dataset.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load dataset failed", err, "Could not load the dataset.", "/")
		return
	}

	// Buffer so a failed workbook does not leave a half-written download.
	var buf bytes.Buffer
	if err := tabular.Write(&buf, tbl, format); err != nil {
		h.ErrLog.LogServerError(w, r, "write export failed", err, "Could not build the export.", "/")
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(tbl.Filename(format))))
	_, _ = w.Write(buf.Bytes())

	reqlog.Logger(r, h.Log).Info("dataset exported",
		zap.String("dataset", name),
		zap.String("format", string(format)),
		zap.Int("rows", len(tbl.Rows)),
	)
}
