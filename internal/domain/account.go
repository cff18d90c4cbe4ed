package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountType describes the kind of financial account. It is an open string
// enumeration: the constants below are the values observed in practice, but
// other values are accepted.
type AccountType string

// Known account types.
const (
	AccountTypeChecking   AccountType = "checking"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeCreditCard AccountType = "credit_card"
)

// Common validation errors for Account.
var (
	ErrEmptyAccountUserID = fmt.Errorf("%w: account user ID cannot be empty", ErrValidation)
	ErrEmptyAccountType   = fmt.Errorf("%w: account type cannot be empty", ErrValidation)
)

// Account is a financial account owned by exactly one user. The balance is a
// signed decimal; credit-card accounts typically carry a negative balance.
type Account struct {
	AccountID   int64           `json:"account_id"`
	UserID      int64           `json:"user_id"`
	AccountType AccountType     `json:"account_type"`
	Balance     decimal.Decimal `json:"balance"`
}

// NewAccount creates an Account owned by the given user. The AccountID is
// zero until the store assigns a surrogate key.
// Returns an error if validation fails.
func NewAccount(userID int64, accountType AccountType, balance decimal.Decimal) (*Account, error) {
	account := &Account{
		UserID:      userID,
		AccountType: accountType,
		Balance:     balance,
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

// Validate checks if the Account has valid data.
func (a *Account) Validate() error {
	if a.UserID <= 0 {
		return ErrEmptyAccountUserID
	}

	if a.AccountType == "" {
		return ErrEmptyAccountType
	}

	return nil
}
