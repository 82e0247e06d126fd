package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	accountstore "github.com/invierteya/funds/internal/account/store"
	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/fund"
	fundstore "github.com/invierteya/funds/internal/fund/store"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/movement"
	"github.com/invierteya/funds/internal/subscription"
)

// Store serves the reads a movement needs and opens the transaction its writes share.
type Store struct {
	db       *sql.DB
	accounts *accountstore.Store
	funds    *fundstore.Store
}

func New(db *sql.DB) *Store {
	return &Store{
		db:       db,
		accounts: accountstore.New(db),
		funds:    fundstore.New(db),
	}
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.accounts.GetAccount(ctx, id)
}

func (s *Store) GetFund(ctx context.Context, id string) (*fund.Fund, error) {
	return s.funds.GetFund(ctx, id)
}

func (s *Store) GetSubscription(ctx context.Context, accountID uuid.UUID, fundID string) (*subscription.Subscription, error) {
	query := `
		SELECT account_id, fund_id, invested_amount, status, subscribed_at, transaction_id,
			cancelled_at, cancellation_transaction_id
		FROM subscriptions
		WHERE account_id = $1 AND fund_id = $2
	`

	var (
		sub    subscription.Subscription
		status string
	)

	err := s.db.QueryRowContext(ctx, query, accountID, fundID).Scan(
		&sub.AccountID, &sub.FundID, &sub.InvestedAmount, &status, &sub.SubscribedAt, &sub.TransactionID,
		&sub.CancelledAt, &sub.CancellationTransactionID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, subscription.ErrNotFound
		}

		return nil, database.Unavailable("getting subscription", err)
	}

	sub.Status = subscription.Status(status)

	return &sub, nil
}

func (s *Store) Begin(ctx context.Context) (movement.Tx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, database.Unavailable("beginning transaction", err)
	}

	return &tx{tx: dbTx}, nil
}

type tx struct {
	tx *sql.Tx
}

func (t *tx) CreateEntry(ctx context.Context, e *ledger.Entry) error {
	query := `
		INSERT INTO ledger_entries (
			account_id, transaction_id, fund_id, kind, amount, balance_before, balance_after, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := t.tx.ExecContext(ctx, query,
		e.AccountID, e.TransactionID, e.FundID, e.Kind, e.Amount,
		e.BalanceBefore, e.BalanceAfter, e.Status, e.CreatedAt,
	)
	if err != nil {
		return database.Unavailable("inserting ledger entry", err)
	}

	return nil
}

// UpdateBalance only writes when the stored balance still equals previous.
func (t *tx) UpdateBalance(ctx context.Context, accountID uuid.UUID, previous, next decimal.Decimal) error {
	query := `
		UPDATE accounts
		SET balance = $1, updated_at = NOW()
		WHERE id = $2 AND balance = $3
	`

	res, err := t.tx.ExecContext(ctx, query, next, accountID, previous)
	if err != nil {
		return database.Unavailable("updating balance", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return database.Unavailable("updating balance", err)
	}

	if n == 0 {
		return movement.ErrBalanceConflict
	}

	return nil
}

// SaveSubscription inserts the position or reopens a cancelled one. An
// active row for the same fund is left untouched and reported.
func (t *tx) SaveSubscription(ctx context.Context, sub *subscription.Subscription) error {
	query := `
		INSERT INTO subscriptions (account_id, fund_id, invested_amount, status, subscribed_at, transaction_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (account_id, fund_id) DO UPDATE
		SET invested_amount = EXCLUDED.invested_amount,
			status = EXCLUDED.status,
			subscribed_at = EXCLUDED.subscribed_at,
			transaction_id = EXCLUDED.transaction_id,
			cancelled_at = NULL,
			cancellation_transaction_id = NULL
		WHERE subscriptions.status <> 'active'
	`

	res, err := t.tx.ExecContext(ctx, query,
		sub.AccountID, sub.FundID, sub.InvestedAmount, sub.Status, sub.SubscribedAt, sub.TransactionID,
	)
	if err != nil {
		return database.Unavailable("saving subscription", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return database.Unavailable("saving subscription", err)
	}

	if n == 0 {
		return movement.ErrAlreadySubscribed
	}

	return nil
}

func (t *tx) CancelSubscription(ctx context.Context, accountID uuid.UUID, fundID string, transactionID uuid.UUID, at time.Time) error {
	query := `
		UPDATE subscriptions
		SET status = 'cancelled', cancelled_at = $1, cancellation_transaction_id = $2
		WHERE account_id = $3 AND fund_id = $4 AND status = 'active'
	`

	res, err := t.tx.ExecContext(ctx, query, at, transactionID, accountID, fundID)
	if err != nil {
		return database.Unavailable("cancelling subscription", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return database.Unavailable("cancelling subscription", err)
	}

	if n == 0 {
		return movement.ErrAlreadyCancelled
	}

	return nil
}

func (t *tx) Commit() error {
	if err := t.tx.Commit(); err != nil {
		return database.Unavailable("committing transaction", err)
	}

	return nil
}

func (t *tx) Rollback() error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return database.Unavailable("rolling back transaction", err)
	}

	return nil
}
