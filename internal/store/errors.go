package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique
	// constraint (in practice only users.username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the store rejects a write for
	// integrity reasons, e.g. a foreign-key target that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a unit of work fails to commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrAccountNotFound indicates that the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrBudgetNotFound indicates that the requested budget does not exist.
	ErrBudgetNotFound = fmt.Errorf("%w: budget", ErrNotFound)

	// ErrTransactionNotFound indicates that the requested transaction does not exist.
	ErrTransactionNotFound = fmt.Errorf("%w: transaction", ErrNotFound)

	// ErrLoyaltyProgramNotFound indicates that the requested loyalty program does not exist.
	ErrLoyaltyProgramNotFound = fmt.Errorf("%w: loyalty program", ErrNotFound)

	// ErrUsernameExists indicates that a user with the given username already
	// exists. Returned when the unique constraint on users.username fires.
	ErrUsernameExists = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// IsConstraintError checks if the error is a store-level integrity failure,
// either a uniqueness conflict or a rejected foreign-key reference.
func IsConstraintError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrInvalidEntity)
}
