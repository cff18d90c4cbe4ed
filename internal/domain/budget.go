package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Common validation errors for Budget.
var (
	ErrEmptyBudgetUserID = fmt.Errorf("%w: budget user ID cannot be empty", ErrValidation)
	ErrEmptyBudgetName   = fmt.Errorf("%w: budget name cannot be empty", ErrValidation)
	ErrZeroBudgetDates   = fmt.Errorf("%w: budget start and end dates are required", ErrValidation)
)

// Budget is a named spending envelope owned by one user, covering a date
// range. Transactions may optionally reference a budget.
type Budget struct {
	BudgetID  int64           `json:"budget_id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
}

// NewBudget creates a Budget owned by the given user. The BudgetID is zero
// until the store assigns a surrogate key.
// Returns an error if validation fails.
func NewBudget(
	userID int64,
	name string,
	amount decimal.Decimal,
	startDate, endDate time.Time,
) (*Budget, error) {
	budget := &Budget{
		UserID:    userID,
		Name:      name,
		Amount:    amount,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := budget.Validate(); err != nil {
		return nil, err
	}

	return budget, nil
}

// Validate checks if the Budget has valid data. An inverted date range is
// accepted: see InvertedRange.
func (b *Budget) Validate() error {
	if b.UserID <= 0 {
		return ErrEmptyBudgetUserID
	}

	if b.Name == "" {
		return ErrEmptyBudgetName
	}

	if b.StartDate.IsZero() || b.EndDate.IsZero() {
		return ErrZeroBudgetDates
	}

	return nil
}

// InvertedRange reports whether the budget's end date precedes its start
// date. Such budgets are stored as-is; callers that care should log or
// surface the condition rather than reject it.
func (b *Budget) InvertedRange() bool {
	return b.EndDate.Before(b.StartDate)
}
