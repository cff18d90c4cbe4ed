package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Username and password length bounds enforced at registration time.
const (
	UsernameMinLength = 3
	UsernameMaxLength = 50
	PasswordMinLength = 9
	PasswordMaxLength = 50
)

// Common validation errors for User.
var (
	ErrUsernameTooShort = fmt.Errorf("%w: username must be at least %d characters long", ErrValidation, UsernameMinLength)
	ErrUsernameTooLong  = fmt.Errorf("%w: username must be at most %d characters long", ErrValidation, UsernameMaxLength)
	ErrEmptyEmail       = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrPasswordTooShort = fmt.Errorf("%w: password must be at least %d characters long", ErrValidation, PasswordMinLength)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most %d characters long", ErrValidation, PasswordMaxLength)
	ErrEmptyPassword    = fmt.Errorf("%w: password cannot be empty", ErrValidation)
)

// User represents a registered user of the application. The HashedPassword
// field always holds the opaque token produced by the credential hasher;
// plaintext passwords never reach the entity. Accounts, budgets, transactions
// and loyalty programs owned by a user reference it by UserID.
type User struct {
	UserID         int64  `json:"user_id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Never expose the password hash in JSON
}

// NewUser creates a User with the given username, email and already-hashed
// password. The UserID is zero until the store assigns a surrogate key.
// Returns an error if validation fails.
func NewUser(username, email, hashedPassword string) (*User, error) {
	user := &User{
		Username:       username,
		Email:          email,
		HashedPassword: hashedPassword,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}
	if !validEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// ValidateUsername checks the username length bounds (3-50 characters).
// Lengths are counted in characters, not bytes, so multibyte usernames are
// bounded the same way the request validator bounds them.
func ValidateUsername(username string) error {
	switch n := utf8.RuneCountInString(username); {
	case n < UsernameMinLength:
		return ErrUsernameTooShort
	case n > UsernameMaxLength:
		return ErrUsernameTooLong
	}
	return nil
}

// ValidatePassword checks a plaintext password against the registration
// length bounds (9-50 characters). It lives here rather than on the entity so
// the plaintext never has to be stored on a User value.
func ValidatePassword(password string) error {
	switch n := utf8.RuneCountInString(password); {
	case password == "":
		return ErrEmptyPassword
	case n < PasswordMinLength:
		return ErrPasswordTooShort
	case n > PasswordMaxLength:
		return ErrPasswordTooLong
	}
	return nil
}

// validEmailFormat performs a basic syntactic check: one '@' with a non-empty
// local part and a domain containing an interior dot. Full RFC 5322 parsing is
// left to the request validator at the API boundary.
func validEmailFormat(email string) bool {
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	if strings.ContainsRune(domain, '@') {
		return false
	}
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}

// IsValidationError reports whether err is any domain validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
