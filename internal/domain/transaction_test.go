package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewTransaction(t *testing.T) {
	date := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	amount := decimal.NewFromFloat(-42.50)

	txn, err := NewTransaction(1, 2, nil, date, amount, "coffee")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if txn.TransactionID != 0 {
		t.Errorf("Expected zero TransactionID before persistence, got %d", txn.TransactionID)
	}

	if txn.BudgetID != nil {
		t.Errorf("Expected nil budget reference, got %v", *txn.BudgetID)
	}

	// Test budgeted transaction
	budgetID := int64(7)
	txn, err = NewTransaction(1, 2, &budgetID, date, amount, "groceries")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if txn.BudgetID == nil || *txn.BudgetID != budgetID {
		t.Errorf("Expected budget ID %d, got %v", budgetID, txn.BudgetID)
	}

	// Test missing owner
	_, err = NewTransaction(0, 2, nil, date, amount, "")
	if !errors.Is(err, ErrEmptyTransactionUserID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTransactionUserID, err)
	}

	// Test missing account
	_, err = NewTransaction(1, 0, nil, date, amount, "")
	if !errors.Is(err, ErrEmptyTransactionAccountID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyTransactionAccountID, err)
	}

	// Test non-positive budget reference
	badBudgetID := int64(0)
	_, err = NewTransaction(1, 2, &badBudgetID, date, amount, "")
	if !errors.Is(err, ErrInvalidTransactionBudget) {
		t.Errorf("Expected error %v, got %v", ErrInvalidTransactionBudget, err)
	}

	// Test missing date
	_, err = NewTransaction(1, 2, nil, time.Time{}, amount, "")
	if !errors.Is(err, ErrZeroTransactionDate) {
		t.Errorf("Expected error %v, got %v", ErrZeroTransactionDate, err)
	}
}
