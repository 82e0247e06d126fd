package movement_test

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invierteya/funds/internal/account"
	"github.com/invierteya/funds/internal/fund"
	"github.com/invierteya/funds/internal/ledger"
	"github.com/invierteya/funds/internal/movement"
	"github.com/invierteya/funds/internal/notification"
	"github.com/invierteya/funds/internal/subscription"
)

type subKey struct {
	accountID uuid.UUID
	fundID    string
}

// memStore keeps state in maps and applies a transaction's writes only on Commit.
type memStore struct {
	mu       sync.Mutex
	accounts map[uuid.UUID]account.Account
	funds    map[string]fund.Fund
	subs     map[subKey]subscription.Subscription
	entries  []ledger.Entry

	// failOn makes the named Tx method fail once.
	failOn string
}

func newMemStore(acc account.Account) *memStore {
	m := &memStore{
		accounts: map[uuid.UUID]account.Account{acc.ID: acc},
		funds:    map[string]fund.Fund{},
		subs:     map[subKey]subscription.Subscription{},
	}

	for _, f := range fund.DefaultCatalog() {
		m.funds[f.ID] = *f
	}

	return m
}

func (m *memStore) GetAccount(_ context.Context, id uuid.UUID) (*account.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	acc, ok := m.accounts[id]
	if !ok {
		return nil, account.ErrNotFound
	}

	return &acc, nil
}

func (m *memStore) GetFund(_ context.Context, id string) (*fund.Fund, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, ok := m.funds[id]
	if !ok {
		return nil, fund.ErrNotFound
	}

	return &f, nil
}

func (m *memStore) GetSubscription(_ context.Context, accountID uuid.UUID, fundID string) (*subscription.Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.subs[subKey{accountID, fundID}]
	if !ok {
		return nil, subscription.ErrNotFound
	}

	return &sub, nil
}

func (m *memStore) Begin(context.Context) (movement.Tx, error) {
	return &memTx{store: m}, nil
}

func (m *memStore) balance(id uuid.UUID) decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.accounts[id].Balance
}

func (m *memStore) ledger() []ledger.Entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]ledger.Entry(nil), m.entries...)
}

type memTx struct {
	store *memStore
	ops   []func() error
}

func (tx *memTx) fail(op string) bool {
	if tx.store.failOn == op {
		tx.store.failOn = ""
		return true
	}

	return false
}

func (tx *memTx) CreateEntry(_ context.Context, e *ledger.Entry) error {
	if tx.fail("CreateEntry") {
		return errStoreDown
	}

	entry := *e
	tx.ops = append(tx.ops, func() error {
		tx.store.entries = append(tx.store.entries, entry)
		return nil
	})

	return nil
}

func (tx *memTx) UpdateBalance(_ context.Context, accountID uuid.UUID, previous, next decimal.Decimal) error {
	if tx.fail("UpdateBalance") {
		return errStoreDown
	}

	tx.ops = append(tx.ops, func() error {
		acc := tx.store.accounts[accountID]
		if !acc.Balance.Equal(previous) {
			return movement.ErrBalanceConflict
		}

		acc.Balance = next
		tx.store.accounts[accountID] = acc

		return nil
	})

	return nil
}

func (tx *memTx) SaveSubscription(_ context.Context, sub *subscription.Subscription) error {
	if tx.fail("SaveSubscription") {
		return errStoreDown
	}

	saved := *sub
	tx.ops = append(tx.ops, func() error {
		tx.store.subs[subKey{saved.AccountID, saved.FundID}] = saved
		return nil
	})

	return nil
}

func (tx *memTx) CancelSubscription(_ context.Context, accountID uuid.UUID, fundID string, transactionID uuid.UUID, at time.Time) error {
	if tx.fail("CancelSubscription") {
		return errStoreDown
	}

	tx.ops = append(tx.ops, func() error {
		key := subKey{accountID, fundID}
		sub := tx.store.subs[key]
		sub.Status = subscription.StatusCancelled
		sub.CancelledAt = &at
		sub.CancellationTransactionID = &transactionID
		tx.store.subs[key] = sub

		return nil
	})

	return nil
}

// Commit applies the buffered writes atomically: the first failing write discards all of them.
func (tx *memTx) Commit() error {
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()

	accounts := make(map[uuid.UUID]account.Account, len(tx.store.accounts))
	for k, v := range tx.store.accounts {
		accounts[k] = v
	}

	subs := make(map[subKey]subscription.Subscription, len(tx.store.subs))
	for k, v := range tx.store.subs {
		subs[k] = v
	}

	entries := len(tx.store.entries)

	for _, op := range tx.ops {
		if err := op(); err != nil {
			tx.store.accounts, tx.store.subs = accounts, subs
			tx.store.entries = tx.store.entries[:entries]

			return err
		}
	}

	return nil
}

func (tx *memTx) Rollback() error {
	tx.ops = nil
	return nil
}

// recordingNotifier collects requests instead of delivering them.
type recordingNotifier struct {
	mu   sync.Mutex
	reqs []notification.Request
}

func (n *recordingNotifier) Notify(_ context.Context, req notification.Request) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.reqs = append(n.reqs, req)
}

func (n *recordingNotifier) requests() []notification.Request {
	n.mu.Lock()
	defer n.mu.Unlock()

	return append([]notification.Request(nil), n.reqs...)
}
