package domain

import (
	"errors"
	"strings"
)

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors. Verification failures are deliberately collapsed into a
// single error so callers cannot leak the reason a token was rejected.
var (
	ErrTokenInvalid = errors.New("invalid token")
)

// ValidationError aggregates every field rule violation found in a single
// input, joined the way the persistence layer reports them.
type ValidationError struct {
	Messages []string
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// ConflictError reports a uniqueness violation on a designated field.
// Message overrides the default wording when set; Field is always the first
// conflicting field in declaration order (email before phone).
type ConflictError struct {
	Field   string
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Field + " already exists"
}
