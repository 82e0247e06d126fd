package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/ledger"
)

type Status string

// StatusPending is the only status written here; delivery confirmation belongs to the sink.
const StatusPending Status = "pending"

type Notification struct {
	ID            uuid.UUID       `json:"notification_id"`
	AccountID     uuid.UUID       `json:"user_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	Channel       account.Channel `json:"type"`
	Content       string          `json:"content"`
	Status        Status          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Request describes a completed money movement the account owner should hear about.
type Request struct {
	AccountID     uuid.UUID
	TransactionID uuid.UUID
	Channel       account.Channel
	Kind          ledger.Kind
	FundName      string
	Amount        decimal.Decimal
}

var printer = message.NewPrinter(language.English)

// Render builds the message body for a request. Amounts are shown in whole
// currency units with thousands separators.
func Render(req Request) string {
	amount := printer.Sprintf("COP $%d", req.Amount.Round(0).IntPart())

	switch req.Kind {
	case ledger.KindSubscription:
		return fmt.Sprintf("Your subscription to fund %s for %s has been processed successfully. Transaction ID: %s",
			req.FundName, amount, req.TransactionID)
	case ledger.KindCancellation:
		return fmt.Sprintf("Your cancellation of fund %s for %s has been processed successfully. Transaction ID: %s",
			req.FundName, amount, req.TransactionID)
	default:
		return fmt.Sprintf("Your deposit of %s has been processed successfully. Transaction ID: %s",
			amount, req.TransactionID)
	}
}
