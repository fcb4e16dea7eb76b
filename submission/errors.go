// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"errors"
	"fmt"
)

// ErrValidation is returned for malformed payloads. Nothing has been written when it is returned.
var ErrValidation = errors.New("submission: invalid payload")

// PartialWriteError reports mouza entries that could not be inserted.
//
// In atomic mode the first failure aborts the batch and RolledBack is true:
// the location and every sibling entry were discarded. In best-effort mode all
// entries are attempted and the location plus the successful entries stay.
type PartialWriteError struct {
	Failed     int
	Attempted  int
	Total      int
	RolledBack bool
	Err        error
}

func (e *PartialWriteError) Error() string {
	if e.RolledBack {
		return fmt.Sprintf("mouza entry %d of %d failed, submission rolled back: %v", e.Attempted, e.Total, e.Err)
	}
	return fmt.Sprintf("%d of %d mouza entries failed: %v", e.Failed, e.Total, e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
