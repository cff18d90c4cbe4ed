package mocks

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// MockAccountStore implements store.AccountStore for testing
type MockAccountStore struct {
	CreateFn       func(ctx context.Context, account *domain.Account) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Account, error)
	ListFn         func(ctx context.Context) ([]*domain.Account, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Account, error)

	Accounts    []*domain.Account
	NextID      int64
	CreateError error
	GetError    error
}

// NewMockAccountStore creates a new mock store with initialized defaults
func NewMockAccountStore() *MockAccountStore {
	return &MockAccountStore{NextID: 1}
}

// Create implements the AccountStore interface
func (m *MockAccountStore) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, account)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	account.AccountID = m.NextID
	m.NextID++
	m.Accounts = append(m.Accounts, account)
	return nil
}

// GetByID implements the AccountStore interface
func (m *MockAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, account := range m.Accounts {
		if account.AccountID == id {
			return account, nil
		}
	}
	return nil, store.ErrAccountNotFound
}

// List implements the AccountStore interface
func (m *MockAccountStore) List(ctx context.Context) ([]*domain.Account, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Accounts, nil
}

// ListByUserID implements the AccountStore interface
func (m *MockAccountStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Account, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	var owned []*domain.Account
	for _, account := range m.Accounts {
		if account.UserID == userID {
			owned = append(owned, account)
		}
	}
	return owned, nil
}

// WithTx implements the AccountStore interface for transaction support
func (m *MockAccountStore) WithTx(tx *sql.Tx) store.AccountStore {
	return m
}
