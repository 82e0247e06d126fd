package ledger

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositFundID stands in for the fund reference on movements that do not involve a fund.
const DepositFundID = "DEPOSIT"

// Kind is the movement kind recorded by an entry.
type Kind string

const (
	KindSubscription Kind = "subscription"
	KindCancellation Kind = "cancellation"
	KindDeposit      Kind = "deposit"
)

// Apply returns the balance that results from applying a movement of this kind.
// Subscriptions take money out of the account; cancellations and deposits put it back in.
func (k Kind) Apply(balance, amount decimal.Decimal) decimal.Decimal {
	if k == KindSubscription {
		return balance.Sub(amount)
	}

	return balance.Add(amount)
}

type Status string

const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Entry is an immutable record of a balance-affecting event.
type Entry struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	FundID        string
	Kind          Kind
	Amount        decimal.Decimal
	BalanceBefore decimal.Decimal
	BalanceAfter  decimal.Decimal
	Status        Status
	CreatedAt     time.Time
}

// Consistent reports whether the entry's balances agree with its kind and amount.
func (e *Entry) Consistent() bool {
	return e.Amount.IsPositive() && e.Kind.Apply(e.BalanceBefore, e.Amount).Equal(e.BalanceAfter)
}
