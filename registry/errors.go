// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFields  = errors.New("name and numbers are required")
	ErrEmptyNumbers = errors.New("no valid numbers given")
)

// NumbersTakenError reports the submitted numbers that already belong to
// another registration.
type NumbersTakenError struct {
	Numbers []int
}

func (e *NumbersTakenError) Error() string {
	return fmt.Sprintf("numbers already taken: %s", JoinNumbers(e.Numbers))
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsValidation reports whether err is a registration validation failure
func IsValidation(err error) bool {
	var taken *NumbersTakenError
	return errors.Is(err, ErrEmptyFields) || errors.Is(err, ErrEmptyNumbers) || errors.As(err, &taken)
}
