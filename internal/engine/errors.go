package engine

import (
	"errors"
	"fmt"
)

// Error kinds reported by the engine. Handlers match on these with
// errors.Is to pick a response status; messages carry the detail.
var (
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrInvalidTransition   = errors.New("status transition not allowed")
	ErrInsufficientPayment = errors.New("amount paid is less than the order total")
	ErrAlreadyPaid         = errors.New("order is already paid")
	ErrPersistence         = errors.New("persistence failure")
)

func validationError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func notFoundError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func persistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
