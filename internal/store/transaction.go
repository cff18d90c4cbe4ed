package store

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// TransactionStore defines the interface for transaction data persistence.
type TransactionStore interface {
	// Create saves a new transaction and assigns its surrogate key.
	// Returns ErrInvalidEntity if the referenced user, account or budget does
	// not exist.
	// Returns validation errors from the domain Transaction if data is invalid.
	Create(ctx context.Context, txn *domain.Transaction) error

	// GetByID retrieves a transaction by its surrogate key.
	// Returns ErrTransactionNotFound if the transaction does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)

	// List returns all transactions in key (insertion) order.
	List(ctx context.Context) ([]*domain.Transaction, error)

	// ListByUserID returns the transactions owned by the given user in key order.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.Transaction, error)

	// WithTx returns a TransactionStore bound to the provided transaction.
	WithTx(tx *sql.Tx) TransactionStore
}
