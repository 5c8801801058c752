package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rifadigital/raffle/internal/export"
	"github.com/rifadigital/raffle/internal/report"
	"github.com/rifadigital/raffle/internal/service"
)

// AdminHandler serves the administrative panel: the global summary, the
// duplicate-number reconciliation report, the full-ledger export and the
// reset. All routes sit behind RequireRole("ADMIN").
type AdminHandler struct {
	Svc *service.Reservation
}

func NewAdminHandler(svc *service.Reservation) *AdminHandler {
	if svc == nil {
		panic("nil service passed to NewAdminHandler")
	}
	return &AdminHandler{Svc: svc}
}

// Summary handles GET /v1/admin/summary: per-seller counts and revenue
// plus totals, from a fresh snapshot.
func (h *AdminHandler) Summary(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := sess.Cache.Refresh(c.Request().Context()); err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(http.StatusOK, report.Global(sess.Cache.Snapshot()))
}

// Duplicates handles GET /v1/admin/duplicates. A non-empty list means two
// sessions raced on the same number; the rows stay in the ledger and the
// admin resolves them by hand.
func (h *AdminHandler) Duplicates(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := sess.Cache.Refresh(c.Request().Context()); err != nil {
		return persistenceFailure(c, err)
	}
	dups := report.DuplicateNumbers(sess.Cache.Snapshot())
	return c.JSON(http.StatusOK, echo.Map{
		"count":      len(dups),
		"duplicates": dups,
	})
}

// Export handles GET /v1/admin/export: the whole ledger as a CSV
// download in the fixed column order.
func (h *AdminHandler) Export(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := sess.Cache.Refresh(c.Request().Context()); err != nil {
		return persistenceFailure(c, err)
	}
	data, err := export.CSV(sess.Cache.Snapshot())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "export failed"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="rifa_ledger.csv"`)
	return c.Blob(http.StatusOK, "text/csv", data)
}

type resetReq struct {
	Confirm bool `json:"confirm"`
}

// Reset handles POST /v1/admin/reset. Clearing the ledger is irreversible,
// so the body must carry an explicit {"confirm": true}.
func (h *AdminHandler) Reset(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req resetReq
	if err := c.Bind(&req); err != nil || !req.Confirm {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "reset requires confirm=true"})
	}
	if err := h.Svc.Reset(c.Request().Context(), sess.Cache); err != nil {
		return persistenceFailure(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
