package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/invierteya/funds/internal/auth"
	"github.com/invierteya/funds/internal/http/respond"
)

type ctxKey struct{}

// Verifier resolves a bearer token to the account it was issued for.
type Verifier interface {
	Verify(token string) (uuid.UUID, error)
}

// RequireAccount rejects requests without a valid bearer token and stores the
// authenticated account id in the request context.
func RequireAccount(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				respond.Error(w, r, auth.ErrUnauthenticated)
				return
			}

			id, err := v.Verify(strings.TrimSpace(token))
			if err != nil {
				respond.Error(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), id)))
		})
	}
}

func WithAccountID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// AccountID returns the authenticated account; uuid.Nil outside RequireAccount.
func AccountID(ctx context.Context) uuid.UUID {
	id, _ := ctx.Value(ctxKey{}).(uuid.UUID)
	return id
}
