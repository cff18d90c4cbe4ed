package store

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// BudgetStore defines the interface for budget data persistence.
type BudgetStore interface {
	// Create saves a new budget and assigns its surrogate key.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Budget if data is invalid.
	Create(ctx context.Context, budget *domain.Budget) error

	// GetByID retrieves a budget by its surrogate key.
	// Returns ErrBudgetNotFound if the budget does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Budget, error)

	// List returns all budgets in key (insertion) order.
	List(ctx context.Context) ([]*domain.Budget, error)

	// ListByUserID returns the budgets owned by the given user in key order.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Budget, error)

	// WithTx returns a BudgetStore bound to the provided transaction.
	WithTx(tx *sql.Tx) BudgetStore
}
