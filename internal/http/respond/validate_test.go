package respond

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email   string `json:"email" validate:"required,email"`
	Secret  string `json:"secret" validate:"required,min=6,max=8"`
	Channel string `json:"channel" validate:"omitempty,oneof=email sms"`
	Ignored string `json:"-" validate:"max=1"`
}

func TestValid(t *testing.T) {
	tests := []struct {
		name       string
		req        signup
		wantOK     bool
		wantDetail string
	}{
		{
			name:   "Valid",
			req:    signup{Email: "ana@example.com", Secret: "s3cret"},
			wantOK: true,
		},
		{
			name:       "MissingEmail",
			req:        signup{Secret: "s3cret"},
			wantDetail: "email is required",
		},
		{
			name:       "MalformedEmail",
			req:        signup{Email: "ana", Secret: "s3cret"},
			wantDetail: "email must be a valid email address",
		},
		{
			name:       "TooShort",
			req:        signup{Email: "ana@example.com", Secret: "abc"},
			wantDetail: "secret must have at least 6 characters",
		},
		{
			name:       "TooLong",
			req:        signup{Email: "ana@example.com", Secret: "abcdefghi"},
			wantDetail: "secret must have at most 8 characters",
		},
		{
			name:       "NotOneOf",
			req:        signup{Email: "ana@example.com", Secret: "s3cret", Channel: "fax"},
			wantDetail: "channel must be one of: email, sms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			ok := Valid(rec, tt.req)
			require.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Zero(t, rec.Body.Len())

				return
			}

			var body errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantDetail, body.Detail)
		})
	}
}
