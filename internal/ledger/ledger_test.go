package ledger_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/invierteya/funds/internal/ledger"
)

func TestKind_Apply(t *testing.T) {
	balance := decimal.NewFromInt(500000)
	amount := decimal.NewFromInt(75000)

	assert.Equal(t, "425000", ledger.KindSubscription.Apply(balance, amount).String())
	assert.Equal(t, "575000", ledger.KindCancellation.Apply(balance, amount).String())
	assert.Equal(t, "575000", ledger.KindDeposit.Apply(balance, amount).String())
}

func TestEntry_Consistent(t *testing.T) {
	tests := []struct {
		name  string
		entry ledger.Entry
		want  bool
	}{
		{
			name: "Subscription",
			entry: ledger.Entry{
				Kind: ledger.KindSubscription, Amount: decimal.NewFromInt(75000),
				BalanceBefore: decimal.NewFromInt(500000), BalanceAfter: decimal.NewFromInt(425000),
			},
			want: true,
		},
		{
			name: "WrongSign",
			entry: ledger.Entry{
				Kind: ledger.KindDeposit, Amount: decimal.NewFromInt(20000),
				BalanceBefore: decimal.NewFromInt(500000), BalanceAfter: decimal.NewFromInt(480000),
			},
			want: false,
		},
		{
			name: "ZeroAmount",
			entry: ledger.Entry{
				Kind: ledger.KindDeposit, Amount: decimal.Zero,
				BalanceBefore: decimal.NewFromInt(1), BalanceAfter: decimal.NewFromInt(1),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Consistent())
		})
	}
}

type recordingRepo struct {
	gotLimit int
}

func (r *recordingRepo) ListEntries(_ context.Context, _ uuid.UUID, limit int) ([]*ledger.Entry, error) {
	r.gotLimit = limit
	return nil, nil
}

func TestService_List_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "Default", limit: 0, want: ledger.DefaultLimit},
		{name: "Negative", limit: -3, want: ledger.DefaultLimit},
		{name: "Explicit", limit: 5, want: 5},
		{name: "Capped", limit: 5000, want: ledger.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &recordingRepo{}

			_, err := ledger.NewService(repo).List(context.Background(), uuid.New(), tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, repo.gotLimit)
		})
	}
}
