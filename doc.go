// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Draw API server.

Quickly Draw runs a number raffle: participants register a name with the
numbers they want, and an administrator draws winning numbers from
everything registered.

# Starting the Server

With an SQLite file in the working directory:

	ADMIN_PASSWORD=secret ADMIN_KEY_SALT=salt go run .

With PostgreSQL:

	go run . -t postgres -d "postgres://..." -admin-password secret -admin-salt salt

Settings may also come from a .env file.

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password) or ADMIN_PASSWORD_HASH (-admin-password-hash): admin login
  - ADMIN_KEY_SALT (-admin-salt): Secret for admin key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: raffle.db for sqlite)

# Architecture

  - registry: Registrations, number uniqueness, public message
  - raffle: Drawing winners from the number pool
  - export: CSV export of registrations
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, request IDs, admin gate, JSON helpers
  - models: Domain and request/response types
  - auth: Admin password and admin key
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
