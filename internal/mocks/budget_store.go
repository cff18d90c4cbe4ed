package mocks

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// MockBudgetStore implements store.BudgetStore for testing
type MockBudgetStore struct {
	CreateFn       func(ctx context.Context, budget *domain.Budget) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.Budget, error)
	ListFn         func(ctx context.Context) ([]*domain.Budget, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*domain.Budget, error)

	Budgets     []*domain.Budget
	NextID      int64
	CreateError error
	GetError    error
}

// NewMockBudgetStore creates a new mock store with initialized defaults
func NewMockBudgetStore() *MockBudgetStore {
	return &MockBudgetStore{NextID: 1}
}

// Create implements the BudgetStore interface
func (m *MockBudgetStore) Create(ctx context.Context, budget *domain.Budget) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, budget)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	budget.BudgetID = m.NextID
	m.NextID++
	m.Budgets = append(m.Budgets, budget)
	return nil
}

// GetByID implements the BudgetStore interface
func (m *MockBudgetStore) GetByID(ctx context.Context, id int64) (*domain.Budget, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, budget := range m.Budgets {
		if budget.BudgetID == id {
			return budget, nil
		}
	}
	return nil, store.ErrBudgetNotFound
}

// List implements the BudgetStore interface
func (m *MockBudgetStore) List(ctx context.Context) ([]*domain.Budget, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Budgets, nil
}

// ListByUserID implements the BudgetStore interface
func (m *MockBudgetStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.Budget, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	var owned []*domain.Budget
	for _, budget := range m.Budgets {
		if budget.UserID == userID {
			owned = append(owned, budget)
		}
	}
	return owned, nil
}

// WithTx implements the BudgetStore interface for transaction support
func (m *MockBudgetStore) WithTx(tx *sql.Tx) store.BudgetStore {
	return m
}
