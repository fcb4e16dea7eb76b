// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"fmt"
	"log/slog"
)

// State is a step of one submission.
type State int

const (
	ParentInsertPending State = iota
	ParentInserted
	ChildrenInsertPending
	ChildrenInserted
	Verifying
	Complete
	Failed
)

var stateNames = [...]string{
	ParentInsertPending:   "parent_insert_pending",
	ParentInserted:        "parent_inserted",
	ChildrenInsertPending: "children_insert_pending",
	ChildrenInserted:      "children_inserted",
	Verifying:             "verifying",
	Complete:              "complete",
	Failed:                "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Terminal reports whether no further transition is allowed.
func (s State) Terminal() bool {
	return s == Complete || s == Failed
}

// next is the only forward step out of each non-terminal state.
var next = map[State]State{
	ParentInsertPending:   ParentInserted,
	ParentInserted:        ChildrenInsertPending,
	ChildrenInsertPending: ChildrenInserted,
	ChildrenInserted:      Verifying,
	Verifying:             Complete,
}

// tracker records the progress of one submission.
type tracker struct {
	state    State
	failedAt State
	parentID int64
	history  []State
}

func newTracker() *tracker {
	return &tracker{state: ParentInsertPending, history: []State{ParentInsertPending}}
}

// advance moves to the next state; it panics on a transition the machine does
// not have, since that is a programming error.
func (t *tracker) advance(to State) {
	if to != Failed && next[t.state] != to || t.state.Terminal() {
		panic(fmt.Sprintf("submission: illegal transition %s -> %s", t.state, to))
	}
	slog.Debug("submission state", "from", t.state.String(), "to", to.String(), "parent_id", t.parentID)
	t.state = to
	t.history = append(t.history, to)
}

func (t *tracker) fail(err error) error {
	if !t.state.Terminal() {
		t.failedAt = t.state
		t.advance(Failed)
	}
	return err
}
