// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStoreWrite is returned when an insert or delete statement fails.
	ErrStoreWrite = errors.New("store: write failed")

	// ErrStoreRead is returned when a select statement or row scan fails.
	ErrStoreRead = errors.New("store: read failed")

	// ErrStoreUnavailable is returned when the store is closed or the connection is unusable.
	ErrStoreUnavailable = errors.New("store: unavailable")
)

func writeError(op string, err error) error {
	return classify(ErrStoreWrite, op, err)
}

func readError(op string, err error) error {
	return classify(ErrStoreRead, op, err)
}

func classify(kind error, op string, err error) error {
	if errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrStoreWrite) || errors.Is(err, ErrStoreRead) {
		return err
	}
	if unusable(err) {
		kind = ErrStoreUnavailable
	}
	return fmt.Errorf("%w: %s: %w", kind, op, err)
}

// database/sql does not export its "database is closed" error.
func unusable(err error) bool {
	return errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, driver.ErrBadConn) ||
		strings.Contains(err.Error(), "sql: database is closed")
}
