package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/database"
)

func newMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return New(db), mock
}

func TestStore_CreateAccount(t *testing.T) {
	s, mock := newMock(t)
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	acc := &account.Account{
		ID:                     uuid.New(),
		Email:                  "ana@example.com",
		Phone:                  "+573001234567",
		PasswordHash:           "hash",
		Balance:                decimal.NewFromInt(500000),
		NotificationPreference: account.ChannelSMS,
	}

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs(acc.ID, acc.Email, acc.Phone, acc.PasswordHash, acc.Balance, acc.NotificationPreference).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	require.NoError(t, s.CreateAccount(context.Background(), acc))
	assert.Equal(t, now, acc.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_CreateAccount_DuplicateEmail(t *testing.T) {
	s, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := s.CreateAccount(context.Background(), &account.Account{ID: uuid.New(), Email: "ana@example.com"})
	assert.ErrorIs(t, err, account.ErrEmailTaken)
}

func TestStore_GetAccount(t *testing.T) {
	id := uuid.New()
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	columns := []string{"id", "email", "phone", "password_hash", "balance", "notification_preference", "created_at", "updated_at"}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "Found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM accounts WHERE id = \\$1").
					WithArgs(id).
					WillReturnRows(sqlmock.NewRows(columns).
						AddRow(id.String(), "ana@example.com", "", "hash", "425000.00", "email", now, now))
			},
		},
		{
			name: "NotFound",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM accounts").WithArgs(id).WillReturnError(sql.ErrNoRows)
			},
			wantErr: account.ErrNotFound,
		},
		{
			name: "Unavailable",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT .* FROM accounts").WithArgs(id).WillReturnError(errors.New("conn reset"))
			},
			wantErr: database.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mock := newMock(t)
			tt.setup(mock)

			got, err := s.GetAccount(context.Background(), id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, id, got.ID)
			assert.True(t, decimal.NewFromInt(425000).Equal(got.Balance))
			assert.Equal(t, account.ChannelEmail, got.NotificationPreference)
		})
	}
}
