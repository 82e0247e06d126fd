package movement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/notification"
	"github.com/invierteya/funds/internal/subscription"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=movement
type Repository interface {
	GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error)
	GetFund(ctx context.Context, id string) (*fund.Fund, error)
	GetSubscription(ctx context.Context, accountID uuid.UUID, fundID string) (*subscription.Subscription, error)

	Begin(ctx context.Context) (Tx, error)
}

// Tx groups the writes of one movement so they succeed or fail together.
type Tx interface {
	CreateEntry(ctx context.Context, e *ledger.Entry) error
	UpdateBalance(ctx context.Context, accountID uuid.UUID, previous, next decimal.Decimal) error
	SaveSubscription(ctx context.Context, sub *subscription.Subscription) error
	CancelSubscription(ctx context.Context, accountID uuid.UUID, fundID string, transactionID uuid.UUID, at time.Time) error
	Commit() error
	Rollback() error
}

// Notifier accepts a notification request without waiting for delivery.
type Notifier interface {
	Notify(ctx context.Context, req notification.Request)
}

// Service moves money between an account's balance and its fund positions.
// It holds no mutable state; everything lives behind the Repository.
type Service struct {
	repo     Repository
	notifier Notifier
	limits   Limits
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier, limits Limits) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		limits:   limits,
		now:      time.Now,
	}
}

// Subscribe invests amount (the fund minimum when nil) from the account balance into the fund.
func (s *Service) Subscribe(ctx context.Context, accountID uuid.UUID, fundID string, amount *decimal.Decimal) (*Receipt, error) {
	if amount != nil {
		if err := checkScale(*amount); err != nil {
			return nil, err
		}
	}

	return retryOnConflict(s.limits.ConflictAttempts, func() (*Receipt, error) {
		return s.subscribe(ctx, accountID, fundID, amount)
	})
}

func (s *Service) subscribe(ctx context.Context, accountID uuid.UUID, fundID string, amount *decimal.Decimal) (*Receipt, error) {
	acc, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	f, err := s.repo.GetFund(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("getting fund: %w", err)
	}

	if !f.Active {
		return nil, fmt.Errorf("fund %s is not active: %w", f.ID, fund.ErrNotFound)
	}

	investment := f.MinimumAmount
	if amount != nil {
		investment = *amount
	}

	if investment.LessThan(f.MinimumAmount) {
		return nil, fmt.Errorf("%w: minimum amount for fund %s is %s", ErrInvalidAmount, f.Name, f.MinimumAmount)
	}

	if acc.Balance.LessThan(investment) {
		return nil, fmt.Errorf("%w to subscribe to fund %s", ErrInsufficientFunds, f.Name)
	}

	existing, err := s.repo.GetSubscription(ctx, accountID, fundID)
	if err != nil && !errors.Is(err, subscription.ErrNotFound) {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	if existing != nil && existing.Active() {
		return nil, ErrAlreadySubscribed
	}

	receipt := s.newReceipt(ledger.KindSubscription, acc, investment)
	receipt.FundID, receipt.FundName = f.ID, f.Name

	err = s.inTx(ctx, func(tx Tx) error {
		if err := tx.CreateEntry(ctx, receipt.entry(accountID)); err != nil {
			return fmt.Errorf("writing ledger entry: %w", err)
		}

		if err := tx.UpdateBalance(ctx, accountID, receipt.PreviousBalance, receipt.NewBalance); err != nil {
			return fmt.Errorf("updating balance: %w", err)
		}

		return tx.SaveSubscription(ctx, &subscription.Subscription{
			AccountID:      accountID,
			FundID:         f.ID,
			InvestedAmount: investment,
			Status:         subscription.StatusActive,
			SubscribedAt:   receipt.Timestamp,
			TransactionID:  receipt.TransactionID,
		})
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, accountID, receipt)

	return receipt, nil
}

// Cancel closes an active position and returns the invested amount to the balance.
func (s *Service) Cancel(ctx context.Context, accountID uuid.UUID, fundID string) (*Receipt, error) {
	return retryOnConflict(s.limits.ConflictAttempts, func() (*Receipt, error) {
		return s.cancel(ctx, accountID, fundID)
	})
}

func (s *Service) cancel(ctx context.Context, accountID uuid.UUID, fundID string) (*Receipt, error) {
	sub, err := s.repo.GetSubscription(ctx, accountID, fundID)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	if !sub.Active() {
		return nil, ErrAlreadyCancelled
	}

	acc, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	f, err := s.repo.GetFund(ctx, fundID)
	if err != nil {
		return nil, fmt.Errorf("getting fund: %w", err)
	}

	receipt := s.newReceipt(ledger.KindCancellation, acc, sub.InvestedAmount)
	receipt.FundID, receipt.FundName = f.ID, f.Name

	err = s.inTx(ctx, func(tx Tx) error {
		if err := tx.CreateEntry(ctx, receipt.entry(accountID)); err != nil {
			return fmt.Errorf("writing ledger entry: %w", err)
		}

		if err := tx.UpdateBalance(ctx, accountID, receipt.PreviousBalance, receipt.NewBalance); err != nil {
			return fmt.Errorf("updating balance: %w", err)
		}

		return tx.CancelSubscription(ctx, accountID, fundID, receipt.TransactionID, receipt.Timestamp)
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, accountID, receipt)

	return receipt, nil
}

// Deposit adds amount to the account balance.
func (s *Service) Deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*Receipt, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}

	if err := checkScale(amount); err != nil {
		return nil, err
	}

	if amount.LessThan(s.limits.MinDeposit) {
		return nil, fmt.Errorf("%w: minimum deposit is %s", ErrOutOfRange, s.limits.MinDeposit)
	}

	if amount.GreaterThan(s.limits.MaxDeposit) {
		return nil, fmt.Errorf("%w: maximum deposit is %s", ErrOutOfRange, s.limits.MaxDeposit)
	}

	return retryOnConflict(s.limits.ConflictAttempts, func() (*Receipt, error) {
		return s.deposit(ctx, accountID, amount)
	})
}

func (s *Service) deposit(ctx context.Context, accountID uuid.UUID, amount decimal.Decimal) (*Receipt, error) {
	acc, err := s.repo.GetAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("getting account: %w", err)
	}

	receipt := s.newReceipt(ledger.KindDeposit, acc, amount)
	receipt.FundID = ledger.DepositFundID

	err = s.inTx(ctx, func(tx Tx) error {
		if err := tx.CreateEntry(ctx, receipt.entry(accountID)); err != nil {
			return fmt.Errorf("writing ledger entry: %w", err)
		}

		if err := tx.UpdateBalance(ctx, accountID, receipt.PreviousBalance, receipt.NewBalance); err != nil {
			return fmt.Errorf("updating balance: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(ctx, accountID, receipt)

	return receipt, nil
}

// checkScale rejects amounts the ledger would have to round, which would
// leave stored balances out of step with stored entries.
func checkScale(amount decimal.Decimal) error {
	if !amount.Equal(amount.Round(AmountScale)) {
		return fmt.Errorf("%w: amount supports at most %d decimal places", ErrInvalidAmount, AmountScale)
	}

	return nil
}

func (s *Service) newReceipt(kind ledger.Kind, acc *account.Account, amount decimal.Decimal) *Receipt {
	return &Receipt{
		TransactionID:   uuid.New(),
		Kind:            kind,
		Amount:          amount,
		PreviousBalance: acc.Balance,
		NewBalance:      kind.Apply(acc.Balance, amount),
		Channel:         acc.NotificationPreference,
		Timestamp:       s.now().UTC(),
	}
}

func (r *Receipt) entry(accountID uuid.UUID) *ledger.Entry {
	return &ledger.Entry{
		AccountID:     accountID,
		TransactionID: r.TransactionID,
		FundID:        r.FundID,
		Kind:          r.Kind,
		Amount:        r.Amount,
		BalanceBefore: r.PreviousBalance,
		BalanceAfter:  r.NewBalance,
		Status:        ledger.StatusCompleted,
		CreatedAt:     r.Timestamp,
	}
}

func (s *Service) inTx(ctx context.Context, fn func(tx Tx) error) error {
	tx, err := s.repo.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Service) notify(ctx context.Context, accountID uuid.UUID, r *Receipt) {
	slog.Info("movement completed",
		"kind", r.Kind, "account_id", accountID, "transaction_id", r.TransactionID,
		"amount", r.Amount, "new_balance", r.NewBalance)

	s.notifier.Notify(ctx, notification.Request{
		AccountID:     accountID,
		TransactionID: r.TransactionID,
		Channel:       r.Channel,
		Kind:          r.Kind,
		FundName:      r.FundName,
		Amount:        r.Amount,
	})
}

// retryOnConflict re-runs op from its reads while the balance write keeps losing
// to a concurrent writer, up to attempts times.
func retryOnConflict(attempts int, op func() (*Receipt, error)) (*Receipt, error) {
	attempts = max(attempts, 1)

	for i := 1; ; i++ {
		receipt, err := op()
		if !errors.Is(err, ErrBalanceConflict) {
			return receipt, err
		}

		if i >= attempts {
			return nil, fmt.Errorf("%w: %w", ErrConcurrentUpdate, err)
		}

		slog.Warn("balance conflict, retrying movement", "attempt", i, "error", err)
	}
}
