package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Common validation errors for Transaction.
var (
	ErrEmptyTransactionUserID    = fmt.Errorf("%w: transaction user ID cannot be empty", ErrValidation)
	ErrEmptyTransactionAccountID = fmt.Errorf("%w: transaction account ID cannot be empty", ErrValidation)
	ErrInvalidTransactionBudget  = fmt.Errorf("%w: transaction budget ID must be positive when set", ErrValidation)
	ErrZeroTransactionDate       = fmt.Errorf("%w: transaction date is required", ErrValidation)
)

// Transaction records a single movement of money on an account. The budget
// reference is optional: a transaction need not be budgeted. The sign of
// Amount is up to the caller; no convention is enforced.
type Transaction struct {
	TransactionID int64           `json:"transaction_id"`
	UserID        int64           `json:"user_id"`
	AccountID     int64           `json:"account_id"`
	BudgetID      *int64          `json:"budget_id,omitempty"`
	Date          time.Time       `json:"date"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
}

// NewTransaction creates a Transaction for the given user and account.
// budgetID may be nil for an unbudgeted transaction. The TransactionID is
// zero until the store assigns a surrogate key.
// Returns an error if validation fails.
func NewTransaction(
	userID, accountID int64,
	budgetID *int64,
	date time.Time,
	amount decimal.Decimal,
	description string,
) (*Transaction, error) {
	txn := &Transaction{
		UserID:      userID,
		AccountID:   accountID,
		BudgetID:    budgetID,
		Date:        date,
		Amount:      amount,
		Description: description,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	return txn, nil
}

// Validate checks if the Transaction has valid data.
func (t *Transaction) Validate() error {
	if t.UserID <= 0 {
		return ErrEmptyTransactionUserID
	}

	if t.AccountID <= 0 {
		return ErrEmptyTransactionAccountID
	}

	if t.BudgetID != nil && *t.BudgetID <= 0 {
		return ErrInvalidTransactionBudget
	}

	if t.Date.IsZero() {
		return ErrZeroTransactionDate
	}

	return nil
}
