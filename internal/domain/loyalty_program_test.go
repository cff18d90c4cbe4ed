package domain

import (
	"errors"
	"testing"
	"time"
)

func TestNewLoyaltyProgram(t *testing.T) {
	updated := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	program, err := NewLoyaltyProgram(1, "skymiles", 12000, updated)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if program.LoyaltyID != 0 {
		t.Errorf("Expected zero LoyaltyID before persistence, got %d", program.LoyaltyID)
	}

	if !program.LastUpdatedDate.Equal(updated) {
		t.Errorf("Expected last updated %v, got %v", updated, program.LastUpdatedDate)
	}

	// Test missing owner
	_, err = NewLoyaltyProgram(0, "skymiles", 0, updated)
	if !errors.Is(err, ErrEmptyLoyaltyUserID) {
		t.Errorf("Expected error %v, got %v", ErrEmptyLoyaltyUserID, err)
	}

	// Test missing name
	_, err = NewLoyaltyProgram(1, "", 0, updated)
	if !errors.Is(err, ErrEmptyLoyaltyProgramName) {
		t.Errorf("Expected error %v, got %v", ErrEmptyLoyaltyProgramName, err)
	}
}

func TestNewLoyaltyProgramDefaultsLastUpdated(t *testing.T) {
	before := time.Now().UTC()

	program, err := NewLoyaltyProgram(1, "skymiles", 0, time.Time{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if program.LastUpdatedDate.Before(before) {
		t.Errorf("Expected defaulted last updated at or after %v, got %v", before, program.LastUpdatedDate)
	}
}

func TestLoyaltyProgramNegativePoints(t *testing.T) {
	// A redemption reversal can leave the balance negative.
	program, err := NewLoyaltyProgram(1, "skymiles", -500, time.Time{})
	if err != nil {
		t.Fatalf("Expected no error for negative points, got %v", err)
	}
	if program.Points != -500 {
		t.Errorf("Expected points -500, got %d", program.Points)
	}
}
