package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokens_RoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", 30*time.Minute)
	id := uuid.New()

	token, err := tokens.Issue(id, "ana@example.com")
	require.NoError(t, err)

	got, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestTokens_Verify_Rejects(t *testing.T) {
	id := uuid.New()
	issuer := NewTokens("test-secret", 30*time.Minute)

	valid, err := issuer.Issue(id, "ana@example.com")
	require.NoError(t, err)

	expired := NewTokens("test-secret", 30*time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, err := expired.Issue(id, "ana@example.com")
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "ana@example.com",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		tokens *Tokens
		token  string
	}{
		{name: "WrongSecret", tokens: NewTokens("other-secret", time.Minute), token: valid},
		{name: "Expired", tokens: issuer, token: expiredToken},
		{name: "NoneAlgorithm", tokens: issuer, token: noneToken},
		{name: "NonUUIDSubject", tokens: issuer, token: badSubject},
		{name: "Garbage", tokens: issuer, token: "not-a-token"},
		{name: "Empty", tokens: issuer, token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.tokens.Verify(tt.token)
			assert.ErrorIs(t, err, ErrUnauthenticated)
			assert.Equal(t, uuid.Nil, got)
		})
	}
}

func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong"))
}
