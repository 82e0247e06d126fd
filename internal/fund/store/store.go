package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/invierteya/funds/internal/database"
	"github.com/invierteya/funds/internal/fund"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFund(s scanner) (*fund.Fund, error) {
	var f fund.Fund

	var category string

	if err := s.Scan(&f.ID, &f.Name, &f.MinimumAmount, &category, &f.Active, &f.CreatedAt); err != nil {
		return nil, err
	}

	f.Category = fund.Category(category)

	return &f, nil
}

const selectFundColumns = `id, name, minimum_amount, category, is_active, created_at`

func (s *Store) ListFunds(ctx context.Context, activeOnly bool) ([]*fund.Fund, error) {
	query := `SELECT ` + selectFundColumns + ` FROM funds`
	if activeOnly {
		query += ` WHERE is_active`
	}

	query += ` ORDER BY id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, database.Unavailable("listing funds", err)
	}
	defer rows.Close()

	var funds []*fund.Fund

	for rows.Next() {
		f, err := scanFund(rows)
		if err != nil {
			return nil, database.Unavailable("scanning fund", err)
		}

		funds = append(funds, f)
	}

	if err := rows.Err(); err != nil {
		return nil, database.Unavailable("iterating funds", err)
	}

	return funds, nil
}

func (s *Store) GetFund(ctx context.Context, id string) (*fund.Fund, error) {
	query := `SELECT ` + selectFundColumns + ` FROM funds WHERE id = $1`

	f, err := scanFund(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fund.ErrNotFound
		}

		return nil, database.Unavailable("getting fund", err)
	}

	return f, nil
}

// UpsertFunds writes the whole catalog in one transaction.
func (s *Store) UpsertFunds(ctx context.Context, funds []*fund.Fund) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return database.Unavailable("beginning transaction", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO funds (id, name, minimum_amount, category, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			minimum_amount = EXCLUDED.minimum_amount,
			category = EXCLUDED.category,
			is_active = EXCLUDED.is_active
		RETURNING created_at
	`

	for _, f := range funds {
		if err := dbTx.QueryRowContext(ctx, query,
			f.ID, f.Name, f.MinimumAmount, f.Category, f.Active,
		).Scan(&f.CreatedAt); err != nil {
			return database.Unavailable("upserting fund "+f.ID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return database.Unavailable("committing catalog", err)
	}

	return nil
}
