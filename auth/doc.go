// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides the admin gate.

# Admin Password

The admin password is kept as a bcrypt hash (golang.org/x/crypto/bcrypt).
Either configure ADMIN_PASSWORD_HASH directly or let the server hash
ADMIN_PASSWORD at startup:

	hash, err := auth.HashPassword(cfg.AdminPassword)
	err = auth.CheckPassword(hash, submitted)

bcrypt comparison runs in constant time.

# Admin Keys

A successful login returns an HMAC-SHA256 admin key:

	adminKey := auth.GenerateAdminKey(salt)
	err := auth.ValidateAdminKey(adminKey, salt)

The key is URL-safe base64 encoded without padding. It is deterministic for
a salt, so nothing is stored server-side; changing ADMIN_KEY_SALT revokes
every issued key.

# IP Hashing

Client IPs are logged hashed:

	hash := auth.HashIP(ipAddress, salt)

Returns first 8 bytes (16 hex chars) of HMAC-SHA256.
*/
package auth
