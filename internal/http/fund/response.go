package fund

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/movement"
)

type fundResponse struct {
	ID            string          `json:"fund_id"`
	Name          string          `json:"name"`
	MinimumAmount decimal.Decimal `json:"minimum_amount"`
	Category      fund.Category   `json:"category"`
	Active        bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

func toResponseList(funds []*fund.Fund) []fundResponse {
	resp := make([]fundResponse, 0, len(funds))
	for _, f := range funds {
		resp = append(resp, fundResponse{
			ID:            f.ID,
			Name:          f.Name,
			MinimumAmount: f.MinimumAmount,
			Category:      f.Category,
			Active:        f.Active,
			CreatedAt:     f.CreatedAt,
		})
	}

	return resp
}

type subscribeResponse struct {
	Message          string          `json:"message"`
	TransactionID    uuid.UUID       `json:"transaction_id"`
	FundName         string          `json:"fund_name"`
	InvestedAmount   decimal.Decimal `json:"invested_amount"`
	NewBalance       decimal.Decimal `json:"new_balance"`
	NotificationSent account.Channel `json:"notification_sent"`
}

type cancelResponse struct {
	Message          string          `json:"message"`
	TransactionID    uuid.UUID       `json:"transaction_id"`
	FundName         string          `json:"fund_name"`
	ReturnedAmount   decimal.Decimal `json:"returned_amount"`
	NewBalance       decimal.Decimal `json:"new_balance"`
	NotificationSent account.Channel `json:"notification_sent"`
}

func toSubscribeResponse(r *movement.Receipt) subscribeResponse {
	return subscribeResponse{
		Message:          "Subscription successful",
		TransactionID:    r.TransactionID,
		FundName:         r.FundName,
		InvestedAmount:   r.Amount,
		NewBalance:       r.NewBalance,
		NotificationSent: r.Channel,
	}
}

func toCancelResponse(r *movement.Receipt) cancelResponse {
	return cancelResponse{
		Message:          "Cancellation successful",
		TransactionID:    r.TransactionID,
		FundName:         r.FundName,
		ReturnedAmount:   r.Amount,
		NewBalance:       r.NewBalance,
		NotificationSent: r.Channel,
	}
}
