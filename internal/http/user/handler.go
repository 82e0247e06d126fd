package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/http/middleware"
	"github.com/invierteya/funds/internal/http/respond"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/metrics"
	"github.com/invierteya/funds/internal/movement"
	"github.com/invierteya/funds/internal/subscription"
)

type Handler struct {
	accounts      *account.Service
	ledger        *ledger.Service
	subscriptions *subscription.Service
	movements     *movement.Service
}

func NewHandler(
	accounts *account.Service,
	entries *ledger.Service,
	subscriptions *subscription.Service,
	movements *movement.Service,
) *Handler {
	return &Handler{
		accounts:      accounts,
		ledger:        entries,
		subscriptions: subscriptions,
		movements:     movements,
	}
}

// Routes expects to be mounted behind middleware.RequireAccount.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/me", h.me)
	r.Post("/me/deposit", h.deposit)
	r.Get("/me/transactions", h.transactions)
	r.Get("/me/subscriptions", h.activeSubscriptions)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	acc, err := h.accounts.Get(r.Context(), middleware.AccountID(r.Context()))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toProfileResponse(acc))
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.movements.Deposit(r.Context(), middleware.AccountID(r.Context()), req.Amount)
	if err != nil {
		metrics.RecordMovement(ledger.KindDeposit, decimal.Zero, err)
		respond.Error(w, r, err)

		return
	}

	metrics.RecordMovement(ledger.KindDeposit, receipt.Amount, nil)
	respond.JSON(w, http.StatusOK, toDepositResponse(receipt))
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	limit := ledger.DefaultLimit

	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respond.Detail(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}

		limit = n
	}

	entries, err := h.ledger.List(r.Context(), middleware.AccountID(r.Context()), limit)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toTransactionsResponse(entries))
}

func (h *Handler) activeSubscriptions(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r.Context())

	subs, err := h.subscriptions.ListActive(r.Context(), accountID)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toSubscriptionsResponse(accountID, subs))
}
