package mocks

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/store"
)

// MockLoyaltyProgramStore implements store.LoyaltyProgramStore for testing
type MockLoyaltyProgramStore struct {
	CreateFn       func(ctx context.Context, program *domain.LoyaltyProgram) error
	GetByIDFn      func(ctx context.Context, id int64) (*domain.LoyaltyProgram, error)
	ListFn         func(ctx context.Context) ([]*domain.LoyaltyProgram, error)
	ListByUserIDFn func(ctx context.Context, userID int64) ([]*domain.LoyaltyProgram, error)

	Programs    []*domain.LoyaltyProgram
	NextID      int64
	CreateError error
	GetError    error
}

// NewMockLoyaltyProgramStore creates a new mock store with initialized defaults
func NewMockLoyaltyProgramStore() *MockLoyaltyProgramStore {
	return &MockLoyaltyProgramStore{NextID: 1}
}

// Create implements the LoyaltyProgramStore interface
func (m *MockLoyaltyProgramStore) Create(ctx context.Context, program *domain.LoyaltyProgram) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, program)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	program.LoyaltyID = m.NextID
	m.NextID++
	m.Programs = append(m.Programs, program)
	return nil
}

// GetByID implements the LoyaltyProgramStore interface
func (m *MockLoyaltyProgramStore) GetByID(ctx context.Context, id int64) (*domain.LoyaltyProgram, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	if m.GetError != nil {
		return nil, m.GetError
	}

	for _, program := range m.Programs {
		if program.LoyaltyID == id {
			return program, nil
		}
	}
	return nil, store.ErrLoyaltyProgramNotFound
}

// List implements the LoyaltyProgramStore interface
func (m *MockLoyaltyProgramStore) List(ctx context.Context) ([]*domain.LoyaltyProgram, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Programs, nil
}

// ListByUserID implements the LoyaltyProgramStore interface
func (m *MockLoyaltyProgramStore) ListByUserID(ctx context.Context, userID int64) ([]*domain.LoyaltyProgram, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}

	var owned []*domain.LoyaltyProgram
	for _, program := range m.Programs {
		if program.UserID == userID {
			owned = append(owned, program)
		}
	}
	return owned, nil
}

// WithTx implements the LoyaltyProgramStore interface for transaction support
func (m *MockLoyaltyProgramStore) WithTx(tx *sql.Tx) store.LoyaltyProgramStore {
	return m
}
