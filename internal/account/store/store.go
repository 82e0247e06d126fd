package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/database"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// Expected column order: id, email, phone, password_hash, balance, notification_preference, created_at, updated_at
func scanAccount(s scanner) (*account.Account, error) {
	var acc account.Account

	var pref string

	if err := s.Scan(
		&acc.ID, &acc.Email, &acc.Phone, &acc.PasswordHash, &acc.Balance, &pref,
		&acc.CreatedAt, &acc.UpdatedAt,
	); err != nil {
		return nil, err
	}

	acc.NotificationPreference = account.Channel(pref)

	return &acc, nil
}

const selectAccountColumns = `
	id, email, phone, password_hash, balance, notification_preference, created_at, updated_at
`

func (s *Store) CreateAccount(ctx context.Context, acc *account.Account) error {
	query := `
		INSERT INTO accounts (id, email, phone, password_hash, balance, notification_preference, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		acc.ID,
		acc.Email,
		acc.Phone,
		acc.PasswordHash,
		acc.Balance,
		acc.NotificationPreference,
	).Scan(&acc.CreatedAt, &acc.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return account.ErrEmailTaken
		}

		return database.Unavailable("creating account", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	return s.getOne(ctx, query, id)
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE email = $1`

	return s.getOne(ctx, query, email)
}

func (s *Store) getOne(ctx context.Context, query string, arg any) (*account.Account, error) {
	acc, err := scanAccount(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, database.Unavailable(fmt.Sprintf("getting account %v", arg), err)
	}

	return acc, nil
}
