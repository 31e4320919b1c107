// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"database/sql"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-draw/db"
	"github.com/danielhkuo/quickly-draw/models"
)

// Registry owns the persisted registrations and the public message log.
type Registry struct {
	db     *sql.DB
	dbType string
	now    func() time.Time

	// serializes writers so the uniqueness check and insert are atomic
	mu sync.Mutex
}

type Option func(*Registry)

// WithClock overrides the time source used for registration timestamps
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

func New(conn *sql.DB, dbType string, opts ...Option) *Registry {
	r := &Registry{db: conn, dbType: dbType, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) q(query string) string {
	return db.Rebind(r.dbType, query)
}

// Register validates and stores a new registration.
func (r *Registry) Register(name, rawNumbers string) (models.Registration, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Registration{}, ErrEmptyFields
	}

	numbers := ParseNumbers(rawNumbers)
	if len(numbers) == 0 {
		return models.Registration{}, ErrEmptyNumbers
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return models.Registration{}, storageErr("begin register", err)
	}
	defer tx.Rollback()

	pool, err := numberPool(tx)
	if err != nil {
		return models.Registration{}, storageErr("read number pool", err)
	}

	if taken := collisions(numbers, pool); len(taken) > 0 {
		return models.Registration{}, &NumbersTakenError{Numbers: taken}
	}

	reg := models.Registration{
		Timestamp: r.now().Format(models.TimestampLayout),
		Name:      name,
		Numbers:   numbers,
	}

	err = tx.QueryRow(r.q(`
		INSERT INTO registration (created_at, name, numbers)
		VALUES ($1, $2, $3)
		RETURNING id
	`), reg.Timestamp, reg.Name, JoinNumbers(numbers)).Scan(&reg.ID)
	if err != nil {
		return models.Registration{}, storageErr("insert registration", err)
	}

	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if seen[n] {
			continue
		}
		seen[n] = true

		_, err = tx.Exec(r.q(`
			INSERT INTO registration_number (number, registration_id)
			VALUES ($1, $2)
		`), n, reg.ID)
		if err != nil {
			return models.Registration{}, storageErr("insert registration number", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Registration{}, storageErr("commit register", err)
	}

	slog.Info("registration created", "registration_id", reg.ID, "name", reg.Name, "count", len(numbers))

	return reg, nil
}

func numberPool(tx *sql.Tx) (map[int]bool, error) {
	rows, err := tx.Query(`SELECT number FROM registration_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pool := make(map[int]bool)
	for rows.Next() {
		var n int64
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		pool[int(n)] = true
	}
	return pool, rows.Err()
}

// collisions lists each number found in pool once, in submission order
func collisions(numbers []int, pool map[int]bool) []int {
	var taken []int
	reported := make(map[int]bool)
	for _, n := range numbers {
		if pool[n] && !reported[n] {
			reported[n] = true
			taken = append(taken, n)
		}
	}
	return taken
}

// ListAll returns every registration in insertion order.
func (r *Registry) ListAll() ([]models.Registration, error) {
	rows, err := r.db.Query(`
		SELECT id, created_at, name, numbers
		FROM registration
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, storageErr("list registrations", err)
	}
	defer rows.Close()

	registrations := []models.Registration{}
	for rows.Next() {
		var reg models.Registration
		var stored string
		if err := rows.Scan(&reg.ID, &reg.Timestamp, &reg.Name, &stored); err != nil {
			return nil, storageErr("scan registration", err)
		}
		reg.Numbers, err = splitStored(stored)
		if err != nil {
			return nil, storageErr("decode registration numbers", err)
		}
		registrations = append(registrations, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list registrations", err)
	}

	return registrations, nil
}

// ClearAll deletes every registration. Public messages are kept.
func (r *Registry) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return storageErr("begin clear", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM registration_number`); err != nil {
		return storageErr("clear registration numbers", err)
	}
	if _, err := tx.Exec(`DELETE FROM registration`); err != nil {
		return storageErr("clear registrations", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit clear", err)
	}

	slog.Info("registrations cleared")
	return nil
}

// PublicMessage returns the latest public message, or
// models.FallbackMessage when none has been stored.
func (r *Registry) PublicMessage() (string, error) {
	var text string
	err := r.db.QueryRow(`
		SELECT text FROM public_message
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&text)
	if err == sql.ErrNoRows {
		return models.FallbackMessage, nil
	}
	if err != nil {
		return "", storageErr("read public message", err)
	}
	return text, nil
}

// SetPublicMessage appends a new message; empty text is allowed.
func (r *Registry) SetPublicMessage(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.db.Exec(r.q(`INSERT INTO public_message (text) VALUES ($1)`), text); err != nil {
		return storageErr("insert public message", err)
	}

	slog.Info("public message updated", "length", len(text))
	return nil
}
