// Package apperr defines the error kinds the core distinguishes:
// bad input, missing entity, and storage failure.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

// Validation returns a bad-input error with a caller-facing message.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// NotFound returns a missing-entity error with a caller-facing message.
func NotFound(msg string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, msg)
}

// StoreError wraps a persistence failure. It is propagated to the
// caller unmodified and never retried here: retrying a toggle changes
// its meaning.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Store wraps err as a StoreError for the given operation.
func Store(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// IsStore reports whether err is a storage failure.
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
