// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: raffle.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminPassword: Plaintext admin password, hashed with bcrypt at startup
  - AdminPasswordHash: Bcrypt hash of the admin password
  - AdminKeySalt: Secret for admin key HMAC (required)

One of AdminPassword or AdminPasswordHash must be set. A plaintext
password is hashed with bcrypt by ParseFlags and then cleared, so the
returned Config only carries AdminPasswordHash.

# CLI Flags

	-p                    Server port
	-d                    Database URL
	-t                    Database type
	--admin-password      Admin password
	--admin-password-hash Admin password bcrypt hash
	--admin-salt          Admin key salt

# Environment Variables

Flags fall back to environment variables. A .env file in the working
directory is loaded first when present; variables already set win.

	PORT                → -p
	DATABASE_URL        → -d
	DATABASE_TYPE       → -t
	ADMIN_PASSWORD      → --admin-password
	ADMIN_PASSWORD_HASH → --admin-password-hash
	ADMIN_KEY_SALT      → --admin-salt

CLI flags take precedence over environment variables.
*/
package cliparse
