package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks a missing or malformed required field. Services wrap
	// it with the offending detail.
	ErrValidation = errors.New("validation failed")

	ErrUserExists         = errors.New("User already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("Invalid username or password")

	// ErrUnknownUser is returned when the store rejects an annotation's
	// user_id through its own foreign key.
	ErrUnknownUser        = errors.New("user_id does not reference an existing user")
	ErrAnnotationNotFound = errors.New("annotation not found")
)

// ValidationError describes why an input was rejected. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Message string
}

// Invalid builds a ValidationError from a format string.
func Invalid(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
