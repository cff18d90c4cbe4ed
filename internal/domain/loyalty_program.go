package domain

import (
	"fmt"
	"time"
)

// Common validation errors for LoyaltyProgram.
var (
	ErrEmptyLoyaltyUserID      = fmt.Errorf("%w: loyalty program user ID cannot be empty", ErrValidation)
	ErrEmptyLoyaltyProgramName = fmt.Errorf("%w: loyalty program name cannot be empty", ErrValidation)
)

// LoyaltyProgram tracks a user's points balance in an external rewards
// program. Points are expected to be non-negative but this is not enforced;
// some programs allow a negative balance after a redemption reversal.
type LoyaltyProgram struct {
	LoyaltyID       int64     `json:"loyalty_id"`
	UserID          int64     `json:"user_id"`
	ProgramName     string    `json:"program_name"`
	Points          int64     `json:"points"`
	LastUpdatedDate time.Time `json:"last_updated_date"`
}

// NewLoyaltyProgram creates a LoyaltyProgram for the given user. The
// LoyaltyID is zero until the store assigns a surrogate key. A zero
// lastUpdated defaults to the current time.
// Returns an error if validation fails.
func NewLoyaltyProgram(
	userID int64,
	programName string,
	points int64,
	lastUpdated time.Time,
) (*LoyaltyProgram, error) {
	if lastUpdated.IsZero() {
		lastUpdated = time.Now().UTC()
	}

	program := &LoyaltyProgram{
		UserID:          userID,
		ProgramName:     programName,
		Points:          points,
		LastUpdatedDate: lastUpdated,
	}

	if err := program.Validate(); err != nil {
		return nil, err
	}

	return program, nil
}

// Validate checks if the LoyaltyProgram has valid data.
func (p *LoyaltyProgram) Validate() error {
	if p.UserID <= 0 {
		return ErrEmptyLoyaltyUserID
	}

	if p.ProgramName == "" {
		return ErrEmptyLoyaltyProgramName
	}

	return nil
}
