package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/subscription"
)

func TestStore_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	accountID := uuid.New()
	txID := uuid.New()

	mock.ExpectQuery("SELECT .* FROM subscriptions s LEFT JOIN funds f .* WHERE s.account_id = \\$1 AND s.status = 'active'").
		WithArgs(accountID).
		WillReturnRows(sqlmock.NewRows([]string{
			"account_id", "fund_id", "name", "category", "invested_amount", "status", "subscribed_at", "transaction_id",
		}).AddRow(accountID.String(), "1", "FPV_EL CLIENTE_RECAUDADORA", "FPV", "75000", "active", time.Now(), txID.String()))

	got, err := New(db).ListActive(context.Background(), accountID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Active())
	assert.Equal(t, fund.CategoryFPV, got[0].FundCategory)
	assert.Equal(t, txID, got[0].TransactionID)
	assert.Equal(t, subscription.StatusActive, got[0].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
