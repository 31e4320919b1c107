// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package raffle draws winning numbers from the registered number pool.

# Drawing

	engine := raffle.NewEngine(reg)
	result, err := engine.Draw(3)

The pool is the set of distinct numbers across all registrations. Each
number is attributed to the first registration, in insertion order, that
lists it. Draw picks n numbers without replacement with a partial
Fisher-Yates shuffle, so every n-subset is equally likely, and returns
them ascending.

# Errors

  - ErrInvalidQuantity: n <= 0
  - ErrEmptyPool: nothing registered
  - *InsufficientPoolError: n exceeds the pool; carries PoolSize

Errors from the Source are returned unchanged.

# Randomness

The default generator is ChaCha8 seeded from crypto/rand. Tests pass
WithSeed for reproducible draws:

	engine := raffle.NewEngine(reg, raffle.WithSeed(42))

Results are never persisted.
*/
package raffle
