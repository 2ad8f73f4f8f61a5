// Package errors provides custom error types for product-related operations.
package errors

import (
	"errors"
	"fmt"
)

// ErrProductNotFound is returned by the store when no product exists with the given ID.
var ErrProductNotFound = errors.New("product not found")

// ErrUnauthorized is returned by the dispatcher when a mutating operation is
// attempted by a caller without the required group membership.
var ErrUnauthorized = errors.New("unauthorized")

// ErrBadRequest is returned when an operation event cannot be decoded into a
// known operation shape.
var ErrBadRequest = errors.New("bad request")

// StoreError wraps a failure coming out of the backing store, preserving the
// native cause. Op names the store primitive that failed.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err as a StoreError for the given store primitive.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
