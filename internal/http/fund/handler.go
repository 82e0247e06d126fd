package fund

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/http/middleware"
	"github.com/invierteya/funds/internal/http/respond"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/metrics"
	"github.com/invierteya/funds/internal/movement"
)

type Handler struct {
	funds     *fund.Service
	movements *movement.Service
}

func NewHandler(funds *fund.Service, movements *movement.Service) *Handler {
	return &Handler{funds: funds, movements: movements}
}

// Routes mounts the public catalog listing and, behind auth, the subscription endpoints.
func (h *Handler) Routes(r chi.Router, requireAccount func(http.Handler) http.Handler) {
	r.Get("/", h.list)

	r.Group(func(r chi.Router) {
		r.Use(requireAccount)
		r.Post("/subscribe", h.subscribe)
		r.Post("/cancel", h.cancel)
	})
}

// Seed writes the default catalog. Mounted only in development.
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	n, err := h.funds.Seed(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"message":       "Funds initialized",
		"funds_created": n,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	funds, err := h.funds.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(funds))
}

type subscribeRequest struct {
	FundID string           `json:"fund_id" validate:"required"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

type cancelRequest struct {
	FundID string `json:"fund_id" validate:"required"`
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.FundID = strings.TrimSpace(req.FundID)
	if !respond.Valid(w, req) {
		return
	}

	receipt, err := h.movements.Subscribe(r.Context(), middleware.AccountID(r.Context()), req.FundID, req.Amount)
	if err != nil {
		metrics.RecordMovement(ledger.KindSubscription, decimal.Zero, err)
		respond.Error(w, r, err)

		return
	}

	metrics.RecordMovement(ledger.KindSubscription, receipt.Amount, nil)
	respond.JSON(w, http.StatusOK, toSubscribeResponse(receipt))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.FundID = strings.TrimSpace(req.FundID)
	if !respond.Valid(w, req) {
		return
	}

	receipt, err := h.movements.Cancel(r.Context(), middleware.AccountID(r.Context()), req.FundID)
	if err != nil {
		metrics.RecordMovement(ledger.KindCancellation, decimal.Zero, err)
		respond.Error(w, r, err)

		return
	}

	metrics.RecordMovement(ledger.KindCancellation, receipt.Amount, nil)
	respond.JSON(w, http.StatusOK, toCancelResponse(receipt))
}
