package store

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// LoyaltyProgramStore defines the interface for loyalty program persistence.
type LoyaltyProgramStore interface {
	// Create saves a new loyalty program and assigns its surrogate key.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain LoyaltyProgram if data is invalid.
	Create(ctx context.Context, program *domain.LoyaltyProgram) error

	// GetByID retrieves a loyalty program by its surrogate key.
	// Returns ErrLoyaltyProgramNotFound if the program does not exist.
	GetByID(ctx context.Context, id int64) (*domain.LoyaltyProgram, error)

	// List returns all loyalty programs in key (insertion) order.
	List(ctx context.Context) ([]*domain.LoyaltyProgram, error)

	// ListByUserID returns the loyalty programs owned by the given user in key order.
	ListByUserID(ctx context.Context, userID int64) ([]*domain.LoyaltyProgram, error)

	// WithTx returns a LoyaltyProgramStore bound to the provided transaction.
	WithTx(tx *sql.Tx) LoyaltyProgramStore
}
