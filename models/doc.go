// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and API types for the Quickly Draw service.

# Domain Types

Core entities stored in the database:

  - Registration: A participant's name and chosen numbers

Derived, never stored:

  - DrawResult: Drawn numbers (ascending) and their winners
  - DrawEntry: One number/winner pair

# Request Types

API request bodies:

  - RegisterRequest: Participant name and comma-separated numbers
  - LoginRequest: Admin password
  - DrawRequest: How many numbers to draw
  - SetMessageRequest: New public message text

# Response Types

API response bodies:

  - RegisterResponse: ok flag, user-facing message, created registration or taken numbers
  - RegistrationOutput: Registration with comma-joined numbers
  - LoginResponse: Admin key for X-Admin-Key
  - DrawResponse: ok flag, message, comma-joined numbers and results table
  - MessageResponse: Current public message
  - StatusResponse: ok flag and message
  - ErrorResponse: Standard error format

# Constants

	DefaultMessage  // seeded into the message log on schema creation
	FallbackMessage // returned when the log is empty
	Unassigned      // winner label for numbers without a registrant
	TimestampLayout // "02/01/2006 15:04"
*/
package models
