// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, conn *sql.DB, dialect Dialect) error {
	stmts, err := schemaFor(dialect)
	if err != nil {
		return err
	}

	for _, stmt := range stmts {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func schemaFor(dialect Dialect) ([]string, error) {
	switch dialect {
	case SQLite:
		return sqliteSchema, nil
	case Postgres:
		return postgresSchema, nil
	default:
		return nil, fmt.Errorf("no schema for dialect %q", dialect)
	}
}

// AUTOINCREMENT keeps SQLite from reusing the ids of deleted rows.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS form_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    division TEXT,
    district TEXT,
    upazila TEXT,
    "union" TEXT
)`,
	`CREATE TABLE IF NOT EXISTS mouza_info (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    form_data_id INTEGER NOT NULL REFERENCES form_data(id) ON DELETE CASCADE,
    "mouzaName" TEXT,
    "surveyType" TEXT,
    "sheetNumber" TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_mouza_info_form_data_id ON mouza_info(form_data_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS form_data (
    id BIGSERIAL PRIMARY KEY,
    division TEXT,
    district TEXT,
    upazila TEXT,
    "union" TEXT
)`,
	`CREATE TABLE IF NOT EXISTS mouza_info (
    id BIGSERIAL PRIMARY KEY,
    form_data_id BIGINT NOT NULL REFERENCES form_data(id) ON DELETE CASCADE,
    "mouzaName" TEXT,
    "surveyType" TEXT,
    "sheetNumber" TEXT
)`,
	`CREATE INDEX IF NOT EXISTS idx_mouza_info_form_data_id ON mouza_info(form_data_id)`,
}
