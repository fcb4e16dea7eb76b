// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/mouza-form/cliparse"
	"github.com/danielhkuo/mouza-form/handlers"
	"github.com/danielhkuo/mouza-form/middleware"
	"github.com/danielhkuo/mouza-form/store"
	"github.com/danielhkuo/mouza-form/submission"
)

func NewRouter(st *store.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	workflow := submission.New(st, cfg.SubmitMode)
	formHandler := handlers.NewFormHandler(st, workflow)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithTimeout(cfg.RequestTimeout, h))
	}

	// Health check
	mux.HandleFunc("GET /health", wrap(func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database unavailable", err)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Submissions
	mux.HandleFunc("POST /submit", wrap(formHandler.Submit))

	// Reads
	mux.HandleFunc("GET /data", wrap(formHandler.List))
	mux.HandleFunc("GET /data/{id}", wrap(formHandler.Get))

	// Deletes
	mux.HandleFunc("DELETE /data/{id}", wrap(formHandler.DeleteLocation))
	mux.HandleFunc("DELETE /delete-mouza-info/{form_data_id}", wrap(formHandler.DeleteMouzaInfo))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mouza-form API v1"))
	})

	return middleware.CORS(mux)
}
