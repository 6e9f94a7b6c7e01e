package services

import (
	"errors"
	"fmt"

	"github.com/abdulrahman-nisar/UpliftAI/store"
)

// ValidationError marks input rejected before any store operation runs.
// The caller can always recover by resubmitting corrected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError marks a requested id that does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// StoreError wraps a record-store failure. Never retried, never
// swallowed; the boundary layer maps it to a server error.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// translate classifies a store failure for the given resource name.
func translate(op, resource string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return &StoreError{Op: op, Err: err}
}
