package movement

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/ledger"
)

var (
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrOutOfRange        = fmt.Errorf("%w: deposit out of range", ErrInvalidAmount)
	ErrInsufficientFunds = errors.New("insufficient balance")
	ErrAlreadySubscribed = errors.New("already subscribed to this fund")
	ErrAlreadyCancelled  = errors.New("subscription already cancelled")

	// ErrBalanceConflict is returned by Tx.UpdateBalance when the stored balance
	// no longer matches the value the operation read.
	ErrBalanceConflict = errors.New("balance changed concurrently")
	// ErrConcurrentUpdate is reported once every attempt hit ErrBalanceConflict.
	ErrConcurrentUpdate = errors.New("account is being updated concurrently")
)

// AmountScale is the number of decimal places money columns store.
const AmountScale int32 = 2

// Limits bounds deposits and how often an operation is re-run after losing
// a balance race.
type Limits struct {
	MinDeposit       decimal.Decimal
	MaxDeposit       decimal.Decimal
	ConflictAttempts int
}

// Receipt summarises a completed movement.
type Receipt struct {
	TransactionID   uuid.UUID
	Kind            ledger.Kind
	FundID          string
	FundName        string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Channel         account.Channel
	Timestamp       time.Time
}
