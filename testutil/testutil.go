// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/danielhkuo/mouza-form/cliparse"
	"github.com/danielhkuo/mouza-form/db"
	"github.com/danielhkuo/mouza-form/models"
	"github.com/danielhkuo/mouza-form/store"
	"github.com/danielhkuo/mouza-form/submission"
)

// MemoryURL returns a fresh in-memory SQLite database URL
func MemoryURL() string {
	return "file:" + uuid.NewString() + "?mode=memory&cache=shared"
}

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	conn, dialect, err := db.Open(ctx, db.TypeSQLite, MemoryURL(), 0)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupTestStore wraps a fresh test database in a Store
func SetupTestStore(t *testing.T) (*store.Store, *sql.DB) {
	t.Helper()

	conn := SetupTestDB(t)
	st := store.New(conn)
	t.Cleanup(func() { st.Close() })
	return st, conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3000,
		DatabaseType:    db.TypeSQLite,
		DatabaseURL:     "file::memory:",
		SubmitMode:      submission.ModeAtomic,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		LogLevel:        "info",
	}
}

// Entry builds a survey sheet entry for test fixtures
func Entry(mouzaName, surveyType, sheetNumber string) models.SurveySheetEntry {
	return models.SurveySheetEntry{MouzaName: mouzaName, SurveyType: surveyType, SheetNumber: sheetNumber}
}

// CreateTestLocation inserts a location with the given entries and returns its ID
func CreateTestLocation(t *testing.T, conn *sql.DB, entries ...models.SurveySheetEntry) int64 {
	t.Helper()

	var id int64
	err := conn.QueryRow(`
		INSERT INTO form_data (division, district, upazila, "union")
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, "Dhaka", "Dhaka", "Savar", "Ashulia").Scan(&id)
	if err != nil {
		t.Fatalf("Failed to create test location: %v", err)
	}

	for _, e := range entries {
		_, err := conn.Exec(`
			INSERT INTO mouza_info (form_data_id, "mouzaName", "surveyType", "sheetNumber")
			VALUES ($1, $2, $3, $4)
		`, id, e.MouzaName, e.SurveyType, e.SheetNumber)
		if err != nil {
			t.Fatalf("Failed to create test mouza entry: %v", err)
		}
	}

	return id
}

// CountRows counts rows of a table matching an optional WHERE clause
func CountRows(t *testing.T, conn *sql.DB, table, where string, args ...any) int {
	t.Helper()

	query := "SELECT COUNT(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

// RejectSheetNumber installs a trigger that fails any mouza insert with the
// given sheet number, for exercising partial failures
func RejectSheetNumber(t *testing.T, conn *sql.DB, sheetNumber string) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER reject_sheet BEFORE INSERT ON mouza_info
		WHEN NEW."sheetNumber" = '` + sheetNumber + `'
		BEGIN
			SELECT RAISE(ABORT, 'sheet number rejected');
		END
	`)
	if err != nil {
		t.Fatalf("Failed to create trigger: %v", err)
	}
}

// RejectLocations installs a trigger that fails every form_data insert
func RejectLocations(t *testing.T, conn *sql.DB) {
	t.Helper()

	_, err := conn.Exec(`
		CREATE TRIGGER reject_location BEFORE INSERT ON form_data
		BEGIN
			SELECT RAISE(ABORT, 'location rejected');
		END
	`)
	if err != nil {
		t.Fatalf("Failed to create trigger: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		var raw []byte
		if s, ok := body.(string); ok {
			raw = []byte(s)
		} else {
			raw, _ = json.Marshal(body)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// SubmitBody returns a /submit payload for the Dhaka/Savar/Ashulia location
func SubmitBody(entries ...map[string]any) map[string]any {
	mouza := []map[string]any{}
	mouza = append(mouza, entries...)
	return map[string]any{
		"division":  "Dhaka",
		"district":  "Dhaka",
		"upazila":   "Savar",
		"union":     "Ashulia",
		"mouzaData": mouza,
	}
}

// Mouza returns one mouzaData element for SubmitBody
func Mouza(name, surveyType, sheetNumber string) map[string]any {
	return map[string]any{"mouzaName": name, "surveyType": surveyType, "sheetNumber": sheetNumber}
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
