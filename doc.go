// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the mouza-form API server.

mouza-form stores land survey form submissions: a location (division,
district, upazila, union) together with the mouza survey sheets that belong
to it, and serves them back as JSON.

# Starting the Server

With no configuration the server uses a local SQLite file:

	go run .

Or against PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -t pgx -d "postgres://..." -mode atomic

A .env file in the working directory is loaded first when present.

# Configuration

  - PORT (-p): Server port (default: 3000)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (default: sqlite)
  - DATABASE_URL (-d): connection string (default: file:database.db)
  - SUBMIT_MODE (-mode): atomic or best-effort (default: atomic)
  - REQUEST_TIMEOUT (-timeout): per-request deadline (default: 15s)
  - SHUTDOWN_TIMEOUT (-shutdown-timeout): grace period on SIGINT/SIGTERM (default: 10s)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

# Architecture

  - handlers: HTTP request handlers (submit, list, delete)
  - submission: the submit-and-read-back workflow
  - store: parameterized queries and transactions
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, timeouts, JSON helpers
  - models: Request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
