package mocks

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// MockUserService implements service.UserService for handler testing
type MockUserService struct {
	RegisterFn  func(ctx context.Context, username, email, password string) (*domain.User, error)
	LoginFn     func(ctx context.Context, username, password string) error
	ListUsersFn func(ctx context.Context) ([]*domain.User, error)

	RegisterErr error
	LoginErr    error
	Users       []*domain.User
	NextID      int64
}

// NewMockUserService creates a new mock service with initialized defaults
func NewMockUserService() *MockUserService {
	return &MockUserService{NextID: 1}
}

// Register implements the UserService interface. The default implementation
// validates like the real service and stores the user in memory.
func (m *MockUserService) Register(
	ctx context.Context,
	username, email, password string,
) (*domain.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, username, email, password)
	}

	if m.RegisterErr != nil {
		return nil, m.RegisterErr
	}

	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	user, err := domain.NewUser(username, email, "hashed:"+password)
	if err != nil {
		return nil, err
	}

	user.UserID = m.NextID
	m.NextID++
	m.Users = append(m.Users, user)
	return user, nil
}

// Login implements the UserService interface
func (m *MockUserService) Login(ctx context.Context, username, password string) error {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, username, password)
	}
	return m.LoginErr
}

// ListUsers implements the UserService interface
func (m *MockUserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return m.Users, nil
}
