// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/danielhkuo/mouza-form/middleware"
	"github.com/danielhkuo/mouza-form/models"
	"github.com/danielhkuo/mouza-form/store"
	"github.com/danielhkuo/mouza-form/submission"
)

type FormHandler struct {
	store    *store.Store
	workflow *submission.Workflow
}

func NewFormHandler(st *store.Store, wf *submission.Workflow) *FormHandler {
	return &FormHandler{store: st, workflow: wf}
}

// Submit handles POST /submit
func (h *FormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON",
			fmt.Errorf("%w: %w", submission.ErrValidation, err))
		return
	}

	res, err := h.workflow.Submit(r.Context(), req)
	if err != nil {
		message := "Error inserting data into form_data"
		if errors.Is(err, store.ErrStoreRead) {
			message = "Error fetching form_data"
		}
		h.fail(w, r, err, message)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResponse{
		Message: models.MessageInserted,
		Data:    res.Location,
	})
}

// List handles GET /data
// Every location is read with its entries inside one transaction; any failed
// read fails the whole response.
func (h *FormHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := []models.LocationWithEntries{}

	err := h.store.RunInTx(ctx, func(q *store.Queries) error {
		locations, err := q.ListLocations(ctx)
		if err != nil {
			return err
		}

		for _, loc := range locations {
			entries, err := q.ListSurveyEntries(ctx, loc.ID)
			if err != nil {
				return err
			}
			data = append(data, models.LocationWithEntries{LocationRecord: loc, MouzaData: entries})
		}
		return nil
	})
	if err != nil {
		h.fail(w, r, err, "Error fetching form data")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListResponse{Data: data})
}

// Get handles GET /data/{id}
func (h *FormHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	var (
		loc   models.LocationWithEntries
		found bool
	)
	err := h.store.RunInTx(ctx, func(q *store.Queries) error {
		var err error
		loc, found, err = q.LocationWithEntries(ctx, id)
		return err
	})
	if err != nil {
		h.fail(w, r, err, "Error fetching form data")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Data with ID %d not found", id), nil)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LocationResponse{Data: loc})
}

// DeleteLocation handles DELETE /data/{id}
// Deleting an id that does not exist still succeeds.
func (h *FormHandler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ctx := r.Context()

	var deleted int64
	err := h.store.RunInTx(ctx, func(q *store.Queries) error {
		var err error
		deleted, err = q.DeleteLocation(ctx, id)
		return err
	})
	if err != nil {
		h.fail(w, r, err, "Error deleting form_data")
		return
	}

	middleware.Logger(ctx).Info("location deleted", "form_data_id", id, "rows", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("Data with ID %d and associated mouza info deleted successfully", id),
	})
}

// DeleteMouzaInfo handles DELETE /delete-mouza-info/{form_data_id}
// Only the entries go; the form_data row stays.
func (h *FormHandler) DeleteMouzaInfo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "form_data_id")
	if !ok {
		return
	}
	ctx := r.Context()

	deleted, err := h.store.Queries().DeleteSurveyEntriesByParent(ctx, id)
	if err != nil {
		h.fail(w, r, err, "Error deleting mouza_info")
		return
	}

	middleware.Logger(ctx).Info("mouza info deleted", "form_data_id", id, "rows", deleted)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: fmt.Sprintf("All mouza_info data with form_data_id %d deleted successfully", id),
	})
}

// fail maps workflow and store errors to a status code. message describes the
// operation for plain store failures.
func (h *FormHandler) fail(w http.ResponseWriter, r *http.Request, err error, message string) {
	var partial *submission.PartialWriteError

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, submission.ErrValidation):
		status = http.StatusBadRequest
		message = "Invalid submission"
	case errors.As(err, &partial):
		message = "Error inserting some mouza data"
	case errors.Is(err, store.ErrStoreUnavailable):
		message = "Database unavailable"
	}

	if status == http.StatusInternalServerError {
		middleware.Logger(r.Context()).Error(message, "error", err)
	}
	middleware.ErrorResponse(w, status, message, err)
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, name+" must be an integer",
			fmt.Errorf("%w: %s %q", submission.ErrValidation, name, raw))
		return 0, false
	}
	return id, true
}
