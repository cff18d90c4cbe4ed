package service

import "errors"

// Service-level errors.
var (
	// ErrInvalidCredentials is returned by Login for both an unknown username
	// and a wrong password. The two cases are deliberately indistinguishable
	// so callers cannot enumerate usernames through the login endpoint.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
