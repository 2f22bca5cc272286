package errors

import (
	"errors"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	return errors.As(err, &validationError)
}

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrCategoryNotFound    = errors.New("category not found")
	// ErrCategoryNotEditable is returned when a user tries to change a
	// default category or a category owned by somebody else.
	ErrCategoryNotEditable = errors.New("category cannot be modified")
	ErrUnknownCategory     = NewValidationError("Unknown category for this transaction type")
)
