package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/subscription"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListActive(ctx context.Context, accountID uuid.UUID) ([]*subscription.Subscription, error) {
	query := `
		SELECT s.account_id, s.fund_id, COALESCE(f.name, ''), COALESCE(f.category, ''),
			s.invested_amount, s.status, s.subscribed_at, s.transaction_id
		FROM subscriptions s
		LEFT JOIN funds f ON f.id = s.fund_id
		WHERE s.account_id = $1 AND s.status = 'active'
		ORDER BY s.subscribed_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, database.Unavailable("listing subscriptions", err)
	}
	defer rows.Close()

	var subs []*subscription.Subscription

	for rows.Next() {
		var (
			sub              subscription.Subscription
			category, status string
		)

		if err := rows.Scan(
			&sub.AccountID, &sub.FundID, &sub.FundName, &category,
			&sub.InvestedAmount, &status, &sub.SubscribedAt, &sub.TransactionID,
		); err != nil {
			return nil, database.Unavailable("scanning subscription", err)
		}

		sub.FundCategory = fund.Category(category)
		sub.Status = subscription.Status(status)
		subs = append(subs, &sub)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("iterating subscriptions", err)
	}

	return subs, nil
}
