package subscription

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/fund"
)

var ErrNotFound = errors.New("subscription not found")

// Status is the two-state lifecycle of a position: active -> cancelled.
type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Subscription is an account's position in a fund, keyed by (AccountID, FundID).
// A cancelled position keeps its amount and dates for audit.
type Subscription struct {
	AccountID                 uuid.UUID
	FundID                    string
	FundName                  string        // Loaded via JOIN
	FundCategory              fund.Category // Loaded via JOIN
	InvestedAmount            decimal.Decimal
	Status                    Status
	SubscribedAt              time.Time
	TransactionID             uuid.UUID
	CancelledAt               *time.Time
	CancellationTransactionID *uuid.UUID
}

func (s *Subscription) Active() bool {
	return s.Status == StatusActive
}
