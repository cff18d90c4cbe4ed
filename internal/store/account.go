package store

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// AccountStore defines the interface for account data persistence.
type AccountStore interface {
	// Create saves a new account and assigns its surrogate key.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Account if data is invalid.
	Create(ctx context.Context, account *domain.Account) error

	// GetByID retrieves an account by its surrogate key.
	// Returns ErrAccountNotFound if the account does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// List returns all accounts in key (insertion) order.
	List(ctx context.Context) ([]*domain.Account, error)

	// ListByUserID returns the accounts owned by the given user in key order.
	// The user relationship is a derived lookup, not a stored back-reference.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Account, error)

	// WithTx returns an AccountStore bound to the provided transaction.
	WithTx(tx *sql.Tx) AccountStore
}
