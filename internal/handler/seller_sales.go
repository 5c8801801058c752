package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rifadigital/raffle/internal/model"
	"github.com/rifadigital/raffle/internal/report"
	"github.com/rifadigital/raffle/internal/service"
)

// SaleHandler exposes the selling flow: list free numbers, register a
// sale, and view the seller's own summary. All routes assume SessionAuth
// has resolved a live session.
type SaleHandler struct {
	Svc *service.Reservation
}

func NewSaleHandler(svc *service.Reservation) *SaleHandler {
	if svc == nil {
		panic("nil service passed to NewSaleHandler")
	}
	return &SaleHandler{Svc: svc}
}

type createSaleReq struct {
	Number     string `json:"number"`
	BuyerName  string `json:"buyer_name"`
	BuyerDNI   string `json:"buyer_dni"`
	BuyerPhone string `json:"buyer_phone"`
}

type saleResp struct {
	Sale         model.SaleRecord `json:"sale"`
	WhatsAppLink string           `json:"whatsapp_link"`
	Prizes       []string         `json:"prizes"`
}

// FreeNumbers handles GET /v1/numbers/free. It refreshes the session
// snapshot first so the offer never lags this call.
func (h *SaleHandler) FreeNumbers(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	free, err := h.Svc.FreeNumbers(c.Request().Context(), sess.Cache)
	if err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"count":   len(free),
		"numbers": free,
	})
}

// CreateSale handles POST /v1/sales: the Selecting -> Validating ->
// Committing -> Committed flow. Validation failures map to 400 and never
// touch the store; a taken number maps to 409; a store failure maps to
// 503 and the attempt can simply be retried.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createSaleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	rec, ev, err := h.Svc.Sell(c.Request().Context(), sess.Cache, sess.Seller, service.SaleInput{
		Number:     req.Number,
		BuyerName:  req.BuyerName,
		BuyerDNI:   req.BuyerDNI,
		BuyerPhone: req.BuyerPhone,
	})
	switch {
	case err == nil:
		// ev is the exact event handed to the publisher, link included.
		return c.JSON(http.StatusCreated, saleResp{
			Sale:         rec,
			WhatsAppLink: ev.WhatsAppLink,
			Prizes:       model.Prizes,
		})
	case errors.Is(err, service.ErrIncompleteInput),
		errors.Is(err, service.ErrInvalidPhone),
		errors.Is(err, service.ErrInvalidNumber):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrNumberTaken):
		return c.JSON(http.StatusConflict, echo.Map{"error": "number is already sold"})
	case errors.Is(err, service.ErrNoNumbersAvailable):
		return c.JSON(http.StatusConflict, echo.Map{"error": "no numbers available"})
	default:
		return persistenceFailure(c, err)
	}
}

// MySales handles GET /v1/sales/mine: the seller's own count, revenue and
// rows as of a fresh snapshot.
func (h *SaleHandler) MySales(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if err := sess.Cache.Refresh(c.Request().Context()); err != nil {
		return persistenceFailure(c, err)
	}
	return c.JSON(http.StatusOK, report.ForSeller(sess.Cache.Snapshot(), sess.Seller))
}

// Prizes handles GET /v1/prizes (public): the announced prize list.
func Prizes(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"prizes": model.Prizes})
}

// persistenceFailure maps store errors to a retryable 503. The attempt
// left no partial state behind, so "try again" is the whole contract.
func persistenceFailure(c echo.Context, err error) error {
	var pe *service.PersistenceError
	if errors.As(err, &pe) {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "ledger store unavailable, try again"})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
