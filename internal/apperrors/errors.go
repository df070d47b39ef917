package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrPersistence indicates that the underlying record store was unreachable or rejected an operation.
var ErrPersistence = errors.New("persistence error")

// AppError carries an error category sentinel, a human-readable message and an
// optional underlying cause. errors.Is against the sentinel works through it.
type AppError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap exposes both the category sentinel and the underlying cause, so
// errors.Is matches either (e.g. ErrPersistence as well as pgx sentinels).
func (e *AppError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// NewValidationError creates an error matching ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Kind: ErrValidation, Message: message}
}

// NewNotFoundError creates an error matching ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: ErrNotFound, Message: message}
}

// NewPersistenceError creates an error matching ErrPersistence, wrapping the store failure.
func NewPersistenceError(message string, cause error) *AppError {
	return &AppError{Kind: ErrPersistence, Message: message, Cause: cause}
}
