package fund

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=fund
type Repository interface {
	ListFunds(ctx context.Context, activeOnly bool) ([]*Fund, error)
	GetFund(ctx context.Context, id string) (*Fund, error)
	UpsertFunds(ctx context.Context, funds []*Fund) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the funds open for subscription.
func (s *Service) List(ctx context.Context) ([]*Fund, error) {
	return s.repo.ListFunds(ctx, true)
}

func (s *Service) Get(ctx context.Context, id string) (*Fund, error) {
	return s.repo.GetFund(ctx, id)
}

// Seed writes the default catalog. Existing funds are overwritten, so seeding twice is harmless.
func (s *Service) Seed(ctx context.Context) (int, error) {
	funds := DefaultCatalog()
	if err := s.repo.UpsertFunds(ctx, funds); err != nil {
		return 0, fmt.Errorf("seeding catalog: %w", err)
	}

	return len(funds), nil
}
