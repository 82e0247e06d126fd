package subscription

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	ListActive(ctx context.Context, accountID uuid.UUID) ([]*Subscription, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListActive(ctx context.Context, accountID uuid.UUID) ([]*Subscription, error) {
	return s.repo.ListActive(ctx, accountID)
}
