package domain

import "errors"

// NotFoundError is returned when a requested entity does not exist.
type NotFoundError struct {
	Message string
}

// Error implements the error interface for NotFoundError
func (e *NotFoundError) Error() string {
	return e.Message
}

// Is allows proper error type checking with errors.Is()
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// InvalidInputError is returned when a field is missing, malformed or out of
// range, including malformed identifiers.
type InvalidInputError struct {
	Message string
}

// Error implements the error interface for InvalidInputError
func (e *InvalidInputError) Error() string {
	return e.Message
}

// Is allows proper error type checking with errors.Is()
func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

// DuplicateError is returned on a name collision.
type DuplicateError struct {
	Message string
}

// Error implements the error interface for DuplicateError
func (e *DuplicateError) Error() string {
	return e.Message
}

// Is allows proper error type checking with errors.Is()
func (e *DuplicateError) Is(target error) bool {
	_, ok := target.(*DuplicateError)
	return ok
}

// Helper functions for creating errors with context

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(message string) error {
	return &NotFoundError{Message: message}
}

// NewInvalidInputError creates a new InvalidInputError
func NewInvalidInputError(message string) error {
	return &InvalidInputError{Message: message}
}

// NewDuplicateError creates a new DuplicateError
func NewDuplicateError(message string) error {
	return &DuplicateError{Message: message}
}

// Type assertion helpers for use with errors.As()

// IsNotFoundError checks if an error is a NotFoundError
func IsNotFoundError(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsInvalidInputError checks if an error is an InvalidInputError
func IsInvalidInputError(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}

// IsDuplicateError checks if an error is a DuplicateError
func IsDuplicateError(err error) bool {
	var de *DuplicateError
	return errors.As(err, &de)
}
