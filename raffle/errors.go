// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package raffle

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrEmptyPool       = errors.New("no numbers registered")
)

// InsufficientPoolError is returned when more numbers are requested than
// the pool holds.
type InsufficientPoolError struct {
	Requested int
	PoolSize  int
}

func (e *InsufficientPoolError) Error() string {
	return fmt.Sprintf("requested %d numbers but only %d unique numbers are registered", e.Requested, e.PoolSize)
}
