// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence gateway for locations and their mouza entries.

# Lifecycle

A Store wraps the *sql.DB opened by package db and is passed to handlers
explicitly:

	st := store.New(conn)
	defer st.Close()

After Close every operation fails with ErrStoreUnavailable.

# Transactions

RunInTx scopes a group of statements to one transaction:

	err := st.RunInTx(ctx, func(q *store.Queries) error {
		id, err := q.InsertLocation(ctx, loc)
		if err != nil {
			return err
		}
		_, err = q.InsertSurveyEntry(ctx, id, entry)
		return err
	})

Returning an error from the callback rolls everything back. Store.Queries
gives the same operations without a surrounding transaction.

# Errors

Failures are wrapped with one of the sentinels below and can be matched with
errors.Is:

  - ErrStoreWrite: insert or delete failed
  - ErrStoreRead: select or scan failed
  - ErrStoreUnavailable: store closed or connection unusable
*/
package store
