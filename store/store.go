// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store owns the database handle shared by every request.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Queries runs each statement in its own implicit transaction.
func (s *Store) Queries() *Queries {
	return &Queries{q: s.db, store: s}
}

// RunInTx calls fn with Queries bound to a single transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
func (s *Store) RunInTx(ctx context.Context, fn func(q *Queries) error) error {
	if err := s.available(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify(ErrStoreUnavailable, "begin transaction", err)
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
				slog.Warn("failed to roll back transaction", "error", rbErr)
			}
		}
	}()

	if err := fn(&Queries{q: tx, store: s}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return writeError("commit transaction", err)
	}
	committed = true
	return nil
}

// Ping reports whether the database still answers.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.available(); err != nil {
		return err
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: ping: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the handle. Every later call fails with ErrStoreUnavailable.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

func (s *Store) available() error {
	if s.closed.Load() {
		return fmt.Errorf("%w: store is closed", ErrStoreUnavailable)
	}
	return nil
}
