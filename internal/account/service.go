package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	CreateAccount(ctx context.Context, acc *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Service struct {
	repo           Repository
	hasher         PasswordHasher
	initialBalance decimal.Decimal
}

func NewService(repo Repository, hasher PasswordHasher, initialBalance decimal.Decimal) *Service {
	return &Service{
		repo:           repo,
		hasher:         hasher,
		initialBalance: initialBalance,
	}
}

type RegisterParams struct {
	Email                  string
	Phone                  string
	Password               string
	NotificationPreference Channel
}

// Password bounds in bytes. bcrypt refuses anything past maxPasswordLength.
const (
	minPasswordLength = 6
	maxPasswordLength = 72
)

// Register creates an account funded with the initial balance. Request
// format is checked at the edge; Register only guards what the stored
// record and the hasher depend on.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	email := strings.ToLower(strings.TrimSpace(params.Email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if len(params.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must have at least %d characters", ErrInvalidInput, minPasswordLength)
	}

	if len(params.Password) > maxPasswordLength {
		return nil, fmt.Errorf("%w: password must have at most %d bytes", ErrInvalidInput, maxPasswordLength)
	}

	pref := params.NotificationPreference
	if pref == "" {
		pref = ChannelEmail
	}

	if !pref.Valid() {
		return nil, fmt.Errorf("%w: unknown notification preference %q", ErrInvalidInput, pref)
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	acc := &Account{
		ID:                     uuid.New(),
		Email:                  email,
		Phone:                  strings.TrimSpace(params.Phone),
		PasswordHash:           hash,
		Balance:                s.initialBalance,
		NotificationPreference: pref,
	}

	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		return nil, err
	}

	return acc, nil
}

// Authenticate resolves an account by email and checks its password. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Account, error) {
	acc, err := s.repo.GetAccountByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}

		return nil, err
	}

	if err := s.hasher.Compare(acc.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return acc, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Account, error) {
	return s.repo.GetAccount(ctx, id)
}
