package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/notification"
)

func TestStore_CreateNotification(t *testing.T) {
	n := &notification.Notification{
		ID:            uuid.New(),
		AccountID:     uuid.New(),
		TransactionID: uuid.New(),
		Channel:       account.ChannelEmail,
		Content:       "Your deposit of COP $20,000 has been processed successfully.",
		Status:        notification.StatusPending,
		CreatedAt:     time.Now(),
	}

	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "Success"},
		{name: "Unavailable", execErr: errors.New("broken pipe"), wantErr: database.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			exp := mock.ExpectExec("INSERT INTO notifications").
				WithArgs(n.ID, n.AccountID, n.TransactionID, n.Channel, n.Content, n.Status, n.CreatedAt)
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 1))
			}

			err = New(db).CreateNotification(context.Background(), n)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
