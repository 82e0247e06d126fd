package ledger

import (
	"context"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Repository interface {
	ListEntries(ctx context.Context, accountID uuid.UUID, limit int) ([]*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the most recent entries of an account, newest first.
func (s *Service) List(ctx context.Context, accountID uuid.UUID, limit int) ([]*Entry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}

	return s.repo.ListEntries(ctx, accountID, limit)
}
