// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-draw/auth"
	"github.com/danielhkuo/quickly-draw/cliparse"
	"github.com/danielhkuo/quickly-draw/db"
	"github.com/danielhkuo/quickly-draw/models"
)

// TestDBType is the dialect used by SetupTestDB
const TestDBType = db.TypeSQLite

// TestAdminPassword is the admin password in GetTestConfig
const TestAdminPassword = "test-admin-password"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(TestDBType, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, TestDBType); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

var testPasswordHash = sync.OnceValue(func() string {
	hash, err := auth.HashPassword(TestAdminPassword)
	if err != nil {
		panic(err)
	}
	return hash
})

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3318,
		DatabaseURL:       ":memory:",
		DatabaseType:      TestDBType,
		AdminPasswordHash: testPasswordHash(),
		AdminKeySalt:      "test-admin-salt",
	}
}

// AdminHeaders returns headers carrying a valid admin key for cfg
func AdminHeaders(cfg cliparse.Config) map[string]string {
	return map[string]string{"X-Admin-Key": auth.GenerateAdminKey(cfg.AdminKeySalt)}
}

// CreateTestRegistration inserts a registration directly and returns its ID.
// numbers must already be in canonical form, e.g. "1,2,3".
func CreateTestRegistration(t *testing.T, conn *sql.DB, name, numbers string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(db.Rebind(TestDBType, `
		INSERT INTO registration (created_at, name, numbers)
		VALUES ($1, $2, $3)
		RETURNING id
	`), time.Now().Format(models.TimestampLayout), name, numbers).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test registration: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
