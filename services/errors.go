package services

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested document does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or unusable required field on a request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// StoreError wraps a persistence failure. Handlers report these as 500s
// without exposing the wrapped error to callers.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
