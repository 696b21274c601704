package services

import "errors"

var (
	ErrValidation         = errors.New("missing required field")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrPersistence        = errors.New("persistence failure")
	ErrMessageNotFound    = errors.New("message not found")
)

// UserMessage returns the text shown to the user for an error returned by this package.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "missing required field"
	case errors.Is(err, ErrDuplicateUsername):
		return "Username already taken"
	case errors.Is(err, ErrInvalidCredentials):
		return "Incorrect username or password"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	default:
		return "Something went wrong. Try again later"
	}
}
