package mocks

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// MockTransactionStore implements store.TransactionStore for testing
type MockTransactionStore struct {
	CreateFn       func(ctx context.Context, txn *domain.Transaction) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Transaction, error)
	ListFn         func(ctx context.Context) ([]*domain.Transaction, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Transaction, error)

	Transactions []*domain.Transaction
	NextID       int64
	CreateError  error
	GetError     error
}

// NewMockTransactionStore creates a new mock store with initialized defaults
func NewMockTransactionStore() *MockTransactionStore {
	return &MockTransactionStore{NextID: 1}
}

// Create implements the TransactionStore interface
func (m *MockTransactionStore) Create(ctx context.Context, txn *domain.Transaction) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, txn)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	txn.TransactionID = m.NextID
	m.NextID++
	m.Transactions = append(m.Transactions, txn)
	return nil
}

// GetByID implements the TransactionStore interface
func (m *MockTransactionStore) GetByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, txn := range m.Transactions {
		if txn.TransactionID == id {
			return txn, nil
		}
	}
	return nil, store.ErrTransactionNotFound
}

// List implements the TransactionStore interface
func (m *MockTransactionStore) List(ctx context.Context) ([]*domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Transactions, nil
}

// ListByUserID implements the TransactionStore interface
func (m *MockTransactionStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Transaction, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	var owned []*domain.Transaction
	for _, txn := range m.Transactions {
		if txn.UserID == userID {
			owned = append(owned, txn)
		}
	}
	return owned, nil
}

// WithTx implements the TransactionStore interface for transaction support
func (m *MockTransactionStore) WithTx(tx *sql.Tx) store.TransactionStore {
	return m
}
