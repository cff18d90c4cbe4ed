package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fintrack/fintrack-api/internal/api/shared"
	"github.com/fintrack/fintrack-api/internal/domain"
	"github.com/fintrack/fintrack-api/internal/service"
	"github.com/fintrack/fintrack-api/internal/store"
)

// Client-facing error messages. Registration deliberately reveals that a
// username exists (matching the public contract) even though login does not;
// the asymmetry is part of the observed API surface.
const (
	msgDuplicateUsername  = "Username already registered"
	msgInvalidCredentials = "Incorrect username or password"
	msgUnexpected         = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. It is the
// single place where the error taxonomy meets the transport.
func MapErrorToStatusCode(err error) int {
	switch {
	// Business-rule conflicts and malformed input are client errors.
	case errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	// Missing entities on read paths.
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Everything else is an opaque server error.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing detail message for the
// error. Store and connectivity failures collapse into a generic message.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	switch {
	case errors.Is(err, store.ErrUsernameExists):
		return msgDuplicateUsername

	case errors.Is(err, service.ErrInvalidCredentials):
		return msgInvalidCredentials

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrAccountNotFound):
		return "Account not found"

	case errors.Is(err, store.ErrBudgetNotFound):
		return "Budget not found"

	case errors.Is(err, store.ErrTransactionNotFound):
		return "Transaction not found"

	case errors.Is(err, store.ErrLoyaltyProgramNotFound):
		return "Loyalty program not found"

	case errors.Is(err, store.ErrInvalidEntity):
		return "Referenced entity does not exist"

	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidID):
		// Domain validation messages are written to be client-safe.
		return err.Error()

	default:
		return msgUnexpected
	}
}

// HandleAPIError writes the appropriate error response for err. When detail
// is empty the sanitized message derived from the error is used.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, detail string) {
	status := MapErrorToStatusCode(err)
	if detail == "" {
		detail = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, detail, err)
}

// SanitizeValidationError turns a validator error into a short client-facing
// message naming the offending field and constraint.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example: "Key: 'RegisterRequest.Email' Error:Field validation for 'Email' failed on the 'required' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}
				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, validationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// validationTagMessage maps validation tags to user-friendly descriptions.
func validationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be positive"
	default:
		return "validation failed"
	}
}
