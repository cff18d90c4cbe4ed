// Package service contains the application workflows that orchestrate the
// domain entities, the stores and the credential hasher.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/service/auth"
	"github.com/fintrack/fintrack-api/internal/store"
)

// UserService provides user registration and login.
type UserService interface {
	// Register validates the input, hashes the password and persists the new
	// user in a single atomic insert. Uniqueness of the username rides on the
	// store's unique constraint rather than a prior read, so there is no
	// check-then-insert race: the losing side of a concurrent duplicate
	// registration receives store.ErrUsernameExists.
	// Returns domain validation errors for malformed input.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)

	// Login verifies the username/password pair. It is an authentication
	// check only; no session or token is issued. Both an unknown username and
	// a wrong password return ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) error

	// ListUsers returns all registered users in insertion order.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore store.UserStore
	hasher    auth.Hasher
	db        *sql.DB
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.Hasher,
	db *sql.DB,
	log *slog.Logger,
) *UserServiceImpl {
	return &UserServiceImpl{
		userStore: userStore,
		hasher:    hasher,
		db:        db,
		logger:    log.With("component", "user_service"),
	}
}

// Ensure UserServiceImpl implements UserService.
var _ UserService = (*UserServiceImpl)(nil)

// Register implements UserService.Register.
func (s *UserServiceImpl) Register(
	ctx context.Context,
	username, email, password string,
) (*domain.User, error) {
	if err := domain.ValidatePassword(password); err != nil {
		s.logger.Debug("registration rejected by password validation",
			"username", username)
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"username", username)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(username, email, hashed)
	if err != nil {
		s.logger.Debug("registration rejected by user validation",
			"error", err,
			"username", username)
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username",
				"username", username)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"username", username)
		}
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", user.UserID,
		"username", user.Username)
	return user, nil
}

// Login implements UserService.Login.
func (s *UserServiceImpl) Login(ctx context.Context, username, password string) error {
	user, err := s.userStore.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown username",
				"username", username)
			return ErrInvalidCredentials
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"username", username)
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"username", username)
		return ErrInvalidCredentials
	}

	s.logger.Info("user logged in",
		"user_id", user.UserID,
		"username", user.Username)
	return nil
}

// ListUsers implements UserService.ListUsers.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
