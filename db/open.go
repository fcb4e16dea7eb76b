// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects the DDL flavour used by CreateSchema.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Database types accepted by Open, mapped to their database/sql driver names.
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
	TypePgx      = "pgx"
)

var drivers = map[string]struct {
	driver  string
	dialect Dialect
}{
	TypeSQLite:   {driver: "sqlite", dialect: SQLite},
	TypePostgres: {driver: "postgres", dialect: Postgres},
	TypePgx:      {driver: "pgx", dialect: Postgres},
}

// Supported reports whether Open accepts dbType.
func Supported(dbType string) bool {
	_, ok := drivers[dbType]
	return ok
}

// Open connects to the database and verifies the connection with a ping.
//
// SQLite is limited to a single connection so that every request shares one
// session; maxConns only applies to the Postgres drivers.
func Open(ctx context.Context, dbType, url string, maxConns int) (*sql.DB, Dialect, error) {
	d, ok := drivers[dbType]
	if !ok {
		return nil, "", fmt.Errorf("unsupported database type %q", dbType)
	}

	dsn := url
	if d.dialect == SQLite {
		dsn = SQLiteDSN(url)
	}

	conn, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("database connection failed: %w", err)
	}

	if d.dialect == SQLite {
		conn.SetMaxOpenConns(1)
	} else if maxConns > 0 {
		conn.SetMaxOpenConns(maxConns)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("database ping failed: %w", err)
	}

	return conn, d.dialect, nil
}

// SQLiteDSN turns foreign key enforcement on for every connection the pool opens.
func SQLiteDSN(url string) string {
	if strings.Contains(url, "foreign_keys") {
		return url
	}
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return url + sep + "_pragma=foreign_keys(1)"
}
