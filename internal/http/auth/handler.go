package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/auth"
	"github.com/invierteya/funds/internal/http/respond"
)

type Handler struct {
	accounts *account.Service
	tokens   *auth.Tokens
}

func NewHandler(accounts *account.Service, tokens *auth.Tokens) *Handler {
	return &Handler{accounts: accounts, tokens: tokens}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

type registerRequest struct {
	Email                  string          `json:"email" validate:"required,email"`
	Phone                  string          `json:"phone" validate:"max=32"`
	Password               string          `json:"password" validate:"required,min=6,max=72"`
	NotificationPreference account.Channel `json:"notification_preference" validate:"omitempty,oneof=email sms"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !respond.Valid(w, req) {
		return
	}

	acc, err := h.accounts.Register(r.Context(), account.RegisterParams{
		Email:                  req.Email,
		Phone:                  req.Phone,
		Password:               req.Password,
		NotificationPreference: req.NotificationPreference,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.issue(w, r, acc)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if !respond.Valid(w, req) {
		return
	}

	acc, err := h.accounts.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	h.issue(w, r, acc)
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request, acc *account.Account) {
	token, err := h.tokens.Issue(acc.ID, acc.Email)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}
