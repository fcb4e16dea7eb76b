// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3000)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - DatabaseURL: connection string (default for sqlite: file:database.db)
  - MaxConns: pool size for postgres/pgx (default: 10)
  - SubmitMode: atomic or best-effort (default: atomic)
  - RequestTimeout: per-request deadline (default: 15s)
  - ShutdownTimeout: grace period for in-flight requests (default: 10s)
  - LogLevel: debug, info, warn or error (default: info)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-max-conns  Maximum open connections
	-mode       Submission mode
	-timeout    Per-request timeout
	-shutdown-timeout  Shutdown grace period
	-log-level  Log level

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	DB_MAX_CONNS    → -max-conns
	SUBMIT_MODE     → -mode
	REQUEST_TIMEOUT → -timeout
	SHUTDOWN_TIMEOUT → -shutdown-timeout
	LOG_LEVEL       → -log-level

CLI flags take precedence over environment variables. main loads a .env file
into the environment before ParseFlags runs.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing for postgres or pgx
  - the database type or submit mode is unknown
  - a numeric or duration value does not parse
*/
package cliparse
