// Package errs defines the failure taxonomy the services report to the
// HTTP layer: NotFound, Validation and Conflict. Each type wraps a
// sentinel error so callers can classify with errors.Is and still read
// a formatted message.
package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Entity string
	ID     any
	Cause  error
}

func NewNotFoundError(entity string, id any) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func NewNotFoundErrorWithCause(entity string, id any, cause error) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s not found: id is: %v (cause: %v)", e.Entity, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s not found: %v", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// ValidationError reports a missing or malformed input value.
type ValidationError struct {
	ParamName string
	Cause     error
}

func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %v)", e.ParamName, e.Cause)
	}
	return fmt.Sprintf("value is invalid: %s", e.ParamName)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError reports a uniqueness violation, e.g. a second open
// postponed order racing for the same parcel.
type ConflictError struct {
	Entity string
	Cause  error
}

func NewConflictError(entity string) *ConflictError {
	return &ConflictError{Entity: entity}
}

func NewConflictErrorWithCause(entity string, cause error) *ConflictError {
	return &ConflictError{Entity: entity, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("conflict on %s (cause: %v)", e.Entity, e.Cause)
	}
	return fmt.Sprintf("conflict on %s", e.Entity)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
