package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/auth"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/movement"
	"github.com/invierteya/funds/internal/subscription"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func Detail(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorResponse{Detail: msg})
}

// Error writes err with the status its kind maps to. Unknown and storage
// errors are logged and reported as a bare 500.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, account.ErrInvalidCredentials):
		w.Header().Set("WWW-Authenticate", "Bearer")
		Detail(w, http.StatusUnauthorized, unwrapped(err))

	case errors.Is(err, account.ErrNotFound):
		Detail(w, http.StatusNotFound, "user not found")
	case errors.Is(err, fund.ErrNotFound):
		Detail(w, http.StatusNotFound, "fund not found")
	case errors.Is(err, subscription.ErrNotFound):
		Detail(w, http.StatusNotFound, "no subscription found for this fund")

	case errors.Is(err, movement.ErrConcurrentUpdate):
		Detail(w, http.StatusConflict, movement.ErrConcurrentUpdate.Error()+", try again")

	case errors.Is(err, account.ErrInvalidInput),
		errors.Is(err, account.ErrEmailTaken),
		errors.Is(err, movement.ErrInvalidAmount),
		errors.Is(err, movement.ErrInsufficientFunds),
		errors.Is(err, movement.ErrAlreadySubscribed),
		errors.Is(err, movement.ErrAlreadyCancelled):
		Detail(w, http.StatusBadRequest, err.Error())

	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		Detail(w, http.StatusInternalServerError, "internal error")
	}
}

// unwrapped returns the innermost message so wrapping context does not leak to clients.
func unwrapped(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}

		err = next
	}
}
