package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/ledger"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// ListEntries returns the newest entries first. Entries sharing a timestamp
// keep insertion order through seq.
func (s *Store) ListEntries(ctx context.Context, accountID uuid.UUID, limit int) ([]*ledger.Entry, error) {
	query := `
		SELECT account_id, transaction_id, fund_id, kind, amount, balance_before, balance_after, status, created_at
		FROM ledger_entries
		WHERE account_id = $1
		ORDER BY created_at DESC, seq DESC
		LIMIT $2
	`

	rows, err := s.db.QueryContext(ctx, query, accountID, limit)
	if err != nil {
		return nil, database.Unavailable("listing ledger entries", err)
	}
	defer rows.Close()

	var entries []*ledger.Entry

	for rows.Next() {
		var (
			e            ledger.Entry
			kind, status string
		)

		if err := rows.Scan(
			&e.AccountID, &e.TransactionID, &e.FundID, &kind, &e.Amount,
			&e.BalanceBefore, &e.BalanceAfter, &status, &e.CreatedAt,
		); err != nil {
			return nil, database.Unavailable("scanning ledger entry", err)
		}

		e.Kind = ledger.Kind(kind)
		e.Status = ledger.Status(status)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("iterating ledger entries", err)
	}

	return entries, nil
}
