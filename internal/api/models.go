package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain"
)

// Request/response structures for the public API.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=9,max=50"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the sanitized projection of a user returned by the API.
// The password hash is never echoed back.
type UserResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// NewUserResponse projects a domain User into its public shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}
}

// MessageResponse is a plain acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreateAccountRequest defines the payload for creating an account.
type CreateAccountRequest struct {
	UserID      int64           `json:"user_id"      validate:"required,gt=0"`
	AccountType string          `json:"account_type" validate:"required"`
	Balance     decimal.Decimal `json:"balance"`
}

// CreateBudgetRequest defines the payload for creating a budget. An end date
// earlier than the start date is accepted; see the budget store for the
// flagging policy.
type CreateBudgetRequest struct {
	UserID    int64           `json:"user_id"    validate:"required,gt=0"`
	Name      string          `json:"name"       validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate time.Time       `json:"start_date" validate:"required"`
	EndDate   time.Time       `json:"end_date"   validate:"required"`
}

// CreateTransactionRequest defines the payload for creating a transaction.
// BudgetID may be omitted for an unbudgeted transaction. No sign convention
// is enforced on the amount.
type CreateTransactionRequest struct {
	UserID      int64           `json:"user_id"     validate:"required,gt=0"`
	AccountID   int64           `json:"account_id"  validate:"required,gt=0"`
	BudgetID    *int64          `json:"budget_id,omitempty" validate:"omitempty,gt=0"`
	Date        time.Time       `json:"date"        validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// CreateLoyaltyProgramRequest defines the payload for creating a loyalty
// program. A zero last_updated_date defaults to the server's current time.
type CreateLoyaltyProgramRequest struct {
	UserID          int64     `json:"user_id"      validate:"required,gt=0"`
	ProgramName     string    `json:"program_name" validate:"required"`
	Points          int64     `json:"points"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}
