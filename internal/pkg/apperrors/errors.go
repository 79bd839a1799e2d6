package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrMissingFields    = errors.New("missing required fields")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidDate      = errors.New("invalid date format")
)

// Registration errors
var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrUserNotFound          = errors.New("user not found")
)

// View dispatch errors
var (
	ErrInvalidViewName = errors.New("invalid view name")
)

// Nurse endpoint errors
var (
	ErrMissingNurseID = errors.New("missing nurse ID")
)

// CustomError wraps a sentinel error with a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error returns the message when set, otherwise the wrapped error text.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Err.Error()
}

// Unwrap exposes the sentinel for errors.Is checks.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error with a specific message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
