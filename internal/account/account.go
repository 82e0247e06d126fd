package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNotFound           = errors.New("account not found")
	ErrEmailTaken         = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid account data")
)

// Channel is the delivery channel an account prefers for notifications.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

func (c Channel) Valid() bool {
	return c == ChannelEmail || c == ChannelSMS
}

// Account is a user's balance-holding profile. The balance is only ever
// changed by the movement service.
type Account struct {
	ID                     uuid.UUID
	Email                  string
	Phone                  string
	PasswordHash           string
	Balance                decimal.Decimal
	NotificationPreference Channel
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
