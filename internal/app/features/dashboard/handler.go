// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"

	errorsfeature "github.com/dalemusser/propertypulse/internal/app/features/errors"
	"github.com/dalemusser/propertypulse/internal/app/system/reqlog"
	"github.com/dalemusser/propertypulse/internal/app/system/selection"
	"github.com/dalemusser/propertypulse/internal/app/system/viewdata"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Sel    *selection.Store
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(sel *selection.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Sel:    sel,
		ErrLog: errLog,
		Log:    logger,
	}
}

// view builds the template name and data for one tab.
type view func(base viewdata.BaseVM) (string, any)

// Dispatch returns the view for tab. Unknown tabs get the Overview.
func Dispatch(tab models.Tab) view {
	switch tab {
	case models.TabMaintenance:
		return maintenanceView
	case models.TabEnergy:
		return energyView
	case models.TabTenant:
		return tenantView
	case models.TabFinancial:
		return financialView
	default:
		return overviewView
	}
}

// ServeDashboard renders the selected tab. The tab comes from the {tab}
// route parameter when mounted under /dashboard and from the query on "/".
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	sel := h.Sel.Resolve(r, chi.URLParam(r, "tab"))
	if err := h.Sel.Remember(w, r, sel); err != nil {
		reqlog.Logger(r, h.Log).Warn("could not remember widget selection", zap.Error(err))
	}

	base := viewdata.NewBaseVM(r, sel, string(sel.Tab), "/")
	name, data := Dispatch(sel.Tab)(base)

	templates.RenderAutoMap(w, r, name, nil, data)

	h.Log.Debug("dashboard served",
		zap.String("tab", sel.Tab.Slug()),
		zap.String("property", sel.Property),
		zap.Int("horizon", sel.Horizon),
	)
}
