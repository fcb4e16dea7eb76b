// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/mouza-form/models"
	"github.com/danielhkuo/mouza-form/store"
)

// Mode selects how mouza entry failures are handled.
type Mode string

const (
	// ModeAtomic writes the location and all entries in one transaction.
	ModeAtomic Mode = "atomic"
	// ModeBestEffort inserts every entry independently and keeps what succeeded.
	ModeBestEffort Mode = "best-effort"
)

// ParseMode accepts "atomic" or "best-effort".
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAtomic, ModeBestEffort:
		return m, nil
	}
	return "", fmt.Errorf("unsupported submit mode %q", s)
}

// Result is the outcome of one submission. Location is only set when State is Complete.
type Result struct {
	Location models.LocationWithEntries
	State    State
	Trace    []State
}

type Workflow struct {
	store    *store.Store
	mode     Mode
	validate *validator.Validate
}

func New(st *store.Store, mode Mode) *Workflow {
	if mode != ModeBestEffort {
		mode = ModeAtomic
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Workflow{store: st, mode: mode, validate: v}
}

func (w *Workflow) Mode() Mode {
	return w.mode
}

// Validate checks that every location field and every mouza entry field is
// present. mouzaData may be empty but not missing.
func (w *Workflow) Validate(req models.SubmitRequest) error {
	err := w.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		// Namespace starts with the struct type name.
		_, path, _ := strings.Cut(fe.Namespace(), ".")
		fields = append(fields, path+" is "+fe.Tag())
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(fields, ", "))
}

// Submit stores the location and its entries, then reads both back so the
// result reflects what the database holds.
func (w *Workflow) Submit(ctx context.Context, req models.SubmitRequest) (Result, error) {
	t := newTracker()

	if err := w.Validate(req); err != nil {
		err = t.fail(err)
		return t.result(), err
	}

	var (
		loc models.LocationWithEntries
		err error
	)
	if w.mode == ModeBestEffort {
		loc, err = w.submitBestEffort(ctx, t, req)
	} else {
		loc, err = w.submitAtomic(ctx, t, req)
	}
	if err != nil {
		err = t.fail(err)
		slog.Warn("submission failed",
			"mode", string(w.mode),
			"state", t.failedAt.String(),
			"parent_id", t.parentID,
			"error", err,
		)
		return t.result(), err
	}

	t.advance(Complete)
	slog.Info("submission stored", "parent_id", t.parentID, "entries", len(loc.MouzaData))

	res := t.result()
	res.Location = loc
	return res, nil
}

func (w *Workflow) submitAtomic(ctx context.Context, t *tracker, req models.SubmitRequest) (models.LocationWithEntries, error) {
	var loc models.LocationWithEntries

	err := w.store.RunInTx(ctx, func(q *store.Queries) error {
		id, err := q.InsertLocation(ctx, req.Location())
		if err != nil {
			return t.fail(err)
		}
		t.parentID = id
		t.advance(ParentInserted)

		t.advance(ChildrenInsertPending)
		for i, in := range req.MouzaData {
			if _, err := q.InsertSurveyEntry(ctx, id, in.Entry()); err != nil {
				return t.fail(&PartialWriteError{
					Failed:     1,
					Attempted:  i + 1,
					Total:      len(req.MouzaData),
					RolledBack: true,
					Err:        err,
				})
			}
		}
		t.advance(ChildrenInserted)

		t.advance(Verifying)
		loc, err = verify(ctx, q, id)
		if err != nil {
			return t.fail(err)
		}
		return nil
	})
	return loc, err
}

func (w *Workflow) submitBestEffort(ctx context.Context, t *tracker, req models.SubmitRequest) (models.LocationWithEntries, error) {
	q := w.store.Queries()

	id, err := q.InsertLocation(ctx, req.Location())
	if err != nil {
		return models.LocationWithEntries{}, t.fail(err)
	}
	t.parentID = id
	t.advance(ParentInserted)

	t.advance(ChildrenInsertPending)
	var errs []error
	for i, in := range req.MouzaData {
		if _, err := q.InsertSurveyEntry(ctx, id, in.Entry()); err != nil {
			slog.Error("failed to insert mouza entry", "parent_id", id, "index", i, "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return models.LocationWithEntries{}, t.fail(&PartialWriteError{
			Failed:    len(errs),
			Attempted: len(req.MouzaData),
			Total:     len(req.MouzaData),
			Err:       errors.Join(errs...),
		})
	}
	t.advance(ChildrenInserted)

	t.advance(Verifying)
	var loc models.LocationWithEntries
	err = w.store.RunInTx(ctx, func(q *store.Queries) error {
		var err error
		loc, err = verify(ctx, q, id)
		return err
	})
	if err != nil {
		return models.LocationWithEntries{}, t.fail(err)
	}
	return loc, nil
}

// verify re-reads the location and its entries.
func verify(ctx context.Context, q *store.Queries, id int64) (models.LocationWithEntries, error) {
	loc, found, err := q.LocationWithEntries(ctx, id)
	if err != nil {
		return models.LocationWithEntries{}, err
	}
	if !found {
		return models.LocationWithEntries{}, fmt.Errorf("%w: form_data %d missing after insert", store.ErrStoreRead, id)
	}
	return loc, nil
}

func (t *tracker) result() Result {
	return Result{State: t.state, Trace: append([]State(nil), t.history...)}
}
