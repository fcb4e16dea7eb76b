// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package submission stores one form submission and reads it back.

# Flow

	ParentInsertPending → ParentInserted → ChildrenInsertPending
	    → ChildrenInserted → Verifying → Complete

Any step can end in Failed. Result.Trace lists the states a submission went
through.

# Modes

ModeAtomic (default) runs the location insert, every mouza insert and the
read-back in one transaction. The first failing entry rolls back everything
and Submit returns a *PartialWriteError with RolledBack set.

ModeBestEffort inserts every entry on its own and counts failures. The
location and the entries that did succeed stay in the database; Submit
returns a *PartialWriteError with the failure count.

# Validation

Validate rejects payloads with a missing location field, a missing
mouzaData array or an entry missing one of its fields. Such payloads fail
with ErrValidation before anything is written. An empty mouzaData array is
accepted.
*/
package submission
