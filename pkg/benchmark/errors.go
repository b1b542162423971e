package benchmark

import (
	stderrors "errors"
)

var (
	ErrInvalidStrategy  = stderrors.New("invalid strategy")
	ErrChecksumMismatch = stderrors.New("checksum mismatch")
)

// ValidationError represents an invalid option value.
type ValidationError struct {
	Value any
	Field string
	Err   error
}

func NewValidationError(field string, value any, err error) *ValidationError {
	return &ValidationError{
		Err:   err,
		Field: field,
		Value: value,
	}
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Field + ": " + e.Err.Error()
	}

	return "validation error"
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError checks if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
