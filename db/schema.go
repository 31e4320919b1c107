// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-draw/models"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// Open opens and pings a database of the given type.
// SQLite connections get foreign keys and a busy timeout.
func Open(dbType, url string) (*sql.DB, error) {
	var driver, dsn string
	switch dbType {
	case TypeSQLite:
		driver = "sqlite"
		dsn = sqliteDSN(url)
	case TypePostgres:
		driver = "postgres"
		dsn = url
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", dbType, err)
	}

	if dbType == TypeSQLite {
		// One writer at a time; also keeps ":memory:" databases on one connection
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", dbType, err)
	}

	return conn, nil
}

func sqliteDSN(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application and seeds the
// default public message.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	var schema string
	switch dbType {
	case TypeSQLite:
		schema = sqliteSchema
	case TypePostgres:
		schema = postgresSchema
	default:
		return fmt.Errorf("unsupported database type %q", dbType)
	}

	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err = db.Exec(Rebind(dbType, `
		INSERT INTO public_message (text)
		SELECT CAST($1 AS TEXT)
		WHERE NOT EXISTS (SELECT 1 FROM public_message)
	`), models.DefaultMessage)
	if err != nil {
		return fmt.Errorf("failed to seed public message: %w", err)
	}

	return nil
}

// Rebind rewrites $N placeholders as ? for SQLite. Queries passed through it
// must use each placeholder once, in argument order.
func Rebind(dbType, query string) string {
	if dbType != TypeSQLite {
		return query
	}

	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && isDigit(query[i+1]) {
			b.WriteByte('?')
			for i+1 < len(query) && isDigit(query[i+1]) {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

const sqliteSchema = `
-- Registrations
CREATE TABLE IF NOT EXISTS registration (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    created_at TEXT NOT NULL,
    name TEXT NOT NULL,
    numbers TEXT NOT NULL
);

-- One row per registered number
CREATE TABLE IF NOT EXISTS registration_number (
    number INTEGER PRIMARY KEY,
    registration_id INTEGER NOT NULL REFERENCES registration(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_registration_number_registration_id ON registration_number(registration_id);

-- Public message log
CREATE TABLE IF NOT EXISTS public_message (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL
);
`

const postgresSchema = `
-- Registrations
CREATE TABLE IF NOT EXISTS registration (
    id BIGSERIAL PRIMARY KEY,
    created_at TEXT NOT NULL,
    name TEXT NOT NULL,
    numbers TEXT NOT NULL
);

-- One row per registered number
CREATE TABLE IF NOT EXISTS registration_number (
    number BIGINT PRIMARY KEY,
    registration_id BIGINT NOT NULL REFERENCES registration(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_registration_number_registration_id ON registration_number(registration_id);

-- Public message log
CREATE TABLE IF NOT EXISTS public_message (
    id BIGSERIAL PRIMARY KEY,
    text TEXT NOT NULL
);
`
