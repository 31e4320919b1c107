// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the store and handles schema creation.

# Opening

Open accepts a database type (sqlite or postgres) and a URL:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

SQLite uses the pure-Go modernc.org/sqlite driver and is limited to a
single open connection. PostgreSQL uses github.com/lib/pq.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The public message log is seeded with models.DefaultMessage only when it
is empty.

# Tables

  - registration: One row per participant submission
  - registration_number: One row per registered number (primary key on number)
  - public_message: Append-only message log, current = highest id

# Relationships

	registration 1──* registration_number

The primary key on registration_number.number makes a number belong to at
most one registration at a time.
*/
package db
