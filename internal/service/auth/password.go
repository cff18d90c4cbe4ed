// Package auth provides the credential hashing collaborator used by the
// registration and login flows. Hashing lives here, not on the User entity,
// so the data layer carries no dependency on a particular hash primitive.
package auth

import "golang.org/x/crypto/bcrypt"

// Hasher defines the interface for hashing and verifying passwords.
type Hasher interface {
	// Hash produces an opaque, salted token safe to persist. Two calls with
	// the same input produce different tokens.
	Hash(password string) (string, error)

	// Compare compares a stored token with a plaintext candidate. Returns nil
	// on match, or an error on mismatch. A malformed token is a mismatch,
	// never a panic.
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements Hasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a BcryptHasher with the given cost. A cost outside
// bcrypt's valid range falls back to the default cost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash implements the Hasher interface using bcrypt.
func (h *BcryptHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare implements the Hasher interface using bcrypt. bcrypt performs a
// constant-time comparison internally.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
