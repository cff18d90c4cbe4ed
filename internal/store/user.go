package store

import (
	"context"
	"database/sql"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its surrogate key.
	// Uniqueness of the username is enforced by the store itself: there is no
	// prior existence check, so concurrent registrations cannot both succeed.
	// Returns ErrUsernameExists if the username is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their surrogate key.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByUsername retrieves a user by their username. If more than one row
	// matches (possible only without the unique constraint), the row with the
	// lowest key wins.
	// Returns ErrUserNotFound if no user matches.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns all users in key (insertion) order. Unbounded; there is no
	// pagination contract.
	List(ctx context.Context) ([]*domain.User, error)

	// WithTx returns a UserStore bound to the provided transaction so that
	// multiple operations can share one unit of work.
	WithTx(tx *sql.Tx) UserStore
}
