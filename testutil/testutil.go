// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/db"
	"github.com/danielhkuo/ship-check/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the vote
// schema. Each test gets its own database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// A single connection keeps the shared in-memory database alive
	// for the duration of the test
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, models.BackendSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         10000,
		DatabaseURL:  "file:test?mode=memory",
		DatabaseType: "sqlite",
		Timezone:     "America/Argentina/Buenos_Aires",
		TopN:         10,
		RecentK:      100,
	}
}

// TestLocation loads the reporting timezone used by GetTestConfig
func TestLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	if err != nil {
		t.Fatalf("Failed to load test timezone: %v", err)
	}
	return loc
}

// InsertVote inserts a vote row directly and returns its id
func InsertVote(t *testing.T, conn *sql.DB, branch, shipment, answer, origin string, at time.Time, comment string) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO vote (submitted_at, branch, shipment, answer, origin, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, at, branch, shipment, answer, origin, comment).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test vote: %v", err)
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
