// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Draw API.

# Handler Types

  - RegistrationHandler: Participant registration, listing, CSV export, purge
  - MessageHandler: Public message read and update
  - DrawHandler: Winner draws
  - AdminHandler: Admin login

Handlers wrap the registry and raffle engine and translate their errors
into status codes:

	registry.ErrEmptyFields, ErrEmptyNumbers  → 400
	*registry.NumbersTakenError               → 409 with "taken"
	raffle.ErrInvalidQuantity                 → 400
	raffle.ErrEmptyPool, *InsufficientPoolError → 409
	*registry.StorageError                    → 500

Admin handlers are mounted behind middleware.RequireAdmin; they do not
check the key themselves.
*/
package handlers
