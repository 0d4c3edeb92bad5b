package services

import "errors"

// ValidationError marks input problems handlers report as 400 with the
// message verbatim; anything else from this package is a store failure.
type ValidationError struct {
	message string
}

func (err *ValidationError) Error() string {
	return err.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

func IsValidationError(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}
