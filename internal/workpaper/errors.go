package workpaper

import (
	"errors"
	"fmt"
)

var (
	ErrJobNotFound         = errors.New("job not found")
	ErrModuleNotFound      = errors.New("module not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrOverrideNotFound    = errors.New("override not found")
	ErrQueryNotFound       = errors.New("query not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrSnapshotNotFound    = errors.New("snapshot not found")
)

// ValidationError rejects a request before any mutation takes place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ConflictError rejects an operation that would violate entity state:
// already frozen, duplicate override, illegal query transition. The
// operation is never coerced to a closest legal state.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// NewConflictError builds a ConflictError.
func NewConflictError(format string, args ...any) error {
	return &ConflictError{Reason: fmt.Sprintf(format, args...)}
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
