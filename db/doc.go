// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured database type:

  - sqlite: modernc.org/sqlite (default, pure Go)
  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib

	conn, dialect, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL, cfg.MaxConns)

SQLite connections always have foreign keys enabled and the pool is held to a
single connection.

# Schema Creation

CreateSchema initializes both tables for the given dialect:

	if err := db.CreateSchema(ctx, conn, dialect); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - form_data: one row per submitted location (division, district, upazila, union)
  - mouza_info: survey sheet entries (mouzaName, surveyType, sheetNumber)

# Relationships

	form_data 1──* mouza_info

mouza_info.form_data_id uses ON DELETE CASCADE.
*/
package db
