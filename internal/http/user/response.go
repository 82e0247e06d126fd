package user

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/movement"
	"github.com/invierteya/funds/internal/subscription"
)

type profileResponse struct {
	ID                     uuid.UUID       `json:"user_id"`
	Balance                decimal.Decimal `json:"balance"`
	Email                  string          `json:"email"`
	Phone                  string          `json:"phone"`
	NotificationPreference account.Channel `json:"notification_preference"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func toProfileResponse(acc *account.Account) profileResponse {
	return profileResponse{
		ID:                     acc.ID,
		Balance:                acc.Balance,
		Email:                  acc.Email,
		Phone:                  acc.Phone,
		NotificationPreference: acc.NotificationPreference,
		CreatedAt:              acc.CreatedAt,
		UpdatedAt:              acc.UpdatedAt,
	}
}

type depositResponse struct {
	Message         string          `json:"message"`
	TransactionID   uuid.UUID       `json:"transaction_id"`
	AmountDeposited decimal.Decimal `json:"amount_deposited"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	Timestamp       time.Time       `json:"timestamp"`
}

func toDepositResponse(r *movement.Receipt) depositResponse {
	return depositResponse{
		Message:         "Deposit successful",
		TransactionID:   r.TransactionID,
		AmountDeposited: r.Amount,
		PreviousBalance: r.PreviousBalance,
		NewBalance:      r.NewBalance,
		Timestamp:       r.Timestamp,
	}
}

type entryResponse struct {
	AccountID     uuid.UUID       `json:"user_id"`
	TransactionID uuid.UUID       `json:"transaction_id"`
	FundID        string          `json:"fund_id"`
	Kind          ledger.Kind     `json:"transaction_type"`
	Amount        decimal.Decimal `json:"amount"`
	Timestamp     time.Time       `json:"timestamp"`
	Status        ledger.Status   `json:"status"`
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

type transactionsResponse struct {
	Transactions []entryResponse `json:"transactions"`
}

func toTransactionsResponse(entries []*ledger.Entry) transactionsResponse {
	resp := transactionsResponse{Transactions: make([]entryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Transactions = append(resp.Transactions, entryResponse{
			AccountID:     e.AccountID,
			TransactionID: e.TransactionID,
			FundID:        e.FundID,
			Kind:          e.Kind,
			Amount:        e.Amount,
			Timestamp:     e.CreatedAt,
			Status:        e.Status,
			BalanceBefore: e.BalanceBefore,
			BalanceAfter:  e.BalanceAfter,
		})
	}

	return resp
}

type subscriptionResponse struct {
	AccountID      uuid.UUID           `json:"user_id"`
	FundID         string              `json:"fund_id"`
	FundName       string              `json:"fund_name"`
	Category       fund.Category       `json:"category"`
	InvestedAmount decimal.Decimal     `json:"invested_amount"`
	SubscribedAt   time.Time           `json:"subscription_date"`
	Status         subscription.Status `json:"status"`
	TransactionID  uuid.UUID           `json:"transaction_id"`
}

type subscriptionsResponse struct {
	AccountID           uuid.UUID              `json:"user_id"`
	ActiveSubscriptions []subscriptionResponse `json:"active_subscriptions"`
	Count               int                    `json:"count"`
}

func toSubscriptionsResponse(accountID uuid.UUID, subs []*subscription.Subscription) subscriptionsResponse {
	resp := subscriptionsResponse{
		AccountID:           accountID,
		ActiveSubscriptions: make([]subscriptionResponse, 0, len(subs)),
		Count:               len(subs),
	}

	for _, s := range subs {
		resp.ActiveSubscriptions = append(resp.ActiveSubscriptions, subscriptionResponse{
			AccountID:      s.AccountID,
			FundID:         s.FundID,
			FundName:       s.FundName,
			Category:       s.FundCategory,
			InvestedAmount: s.InvestedAmount,
			SubscribedAt:   s.SubscribedAt,
			Status:         s.Status,
			TransactionID:  s.TransactionID,
		})
	}

	return resp
}
