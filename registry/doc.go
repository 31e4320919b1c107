// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry stores raffle registrations and the public message.

# Registering

	reg := registry.New(conn, cfg.DatabaseType)
	r, err := reg.Register("Alice", "1, 2, 3")

Register trims the name and parses the numbers with ParseNumbers. It fails
with ErrEmptyFields for a blank name, ErrEmptyNumbers when no token parses,
and *NumbersTakenError when a number already belongs to someone else. The
check and the insert share one transaction and the Registry's writer lock.

# Numbers

Numbers are stored twice: comma-joined on the registration row, exactly as
submitted (duplicates kept), and one row per distinct number in
registration_number, whose primary key rejects reuse.

# Errors

Store failures are returned as *StorageError and are never retried:

	var se *registry.StorageError
	if errors.As(err, &se) {
		// 500
	}

IsValidation reports whether an error is one of the validation failures.
*/
package registry
