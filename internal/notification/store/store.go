package store

import (
	"context"
	"database/sql"

	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/notification"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateNotification(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (id, account_id, transaction_id, channel, content, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	if _, err := s.db.ExecContext(ctx, query,
		n.ID, n.AccountID, n.TransactionID, n.Channel, n.Content, n.Status, n.CreatedAt,
	); err != nil {
		return database.Unavailable("creating notification", err)
	}

	return nil
}
