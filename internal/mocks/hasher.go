package mocks

import "errors"

// MockHasher implements auth.Hasher for testing without bcrypt's cost.
type MockHasher struct {
	// ShouldSucceed determines whether Compare succeeds by default
	ShouldSucceed bool

	// HashFn and CompareFn allow custom behavior in tests
	HashFn    func(password string) (string, error)
	CompareFn func(hashedPassword, password string) error

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Hash implements the auth.Hasher interface. The default implementation
// produces a recognizable fake hash so tests can assert the plaintext never
// reaches storage.
func (m *MockHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.Hasher interface. The default implementation
// inverts Hash, falling back to the ShouldSucceed flag for opaque hashes.
func (m *MockHasher) Compare(hashedPassword, password string) error {
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if hashedPassword == "hashed:"+password {
		return nil
	}
	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
