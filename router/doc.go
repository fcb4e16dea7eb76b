// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

# Usage

	handler := router.NewRouter(st, cfg)
	server := http.Server{Handler: handler, Addr: ":3000"}

The returned handler is the ServeMux wrapped in the open CORS middleware.

# Route Table

Uses Go 1.22+ method-based routing:

	GET    /health                            Health check (pings the database)
	GET    /                                  API banner
	POST   /submit                            Store a location with its mouza entries
	GET    /data                              All locations with their entries
	GET    /data/{id}                         One location with its entries
	DELETE /data/{id}                         Delete a location and its entries
	DELETE /delete-mouza-info/{form_data_id}  Delete only the entries of a location

# Middleware

Every route except the banner is wrapped with:

  - WithLogging: request id, start/completion logs
  - WithTimeout: cfg.RequestTimeout on the request context

The submission mode (atomic or best-effort) comes from cfg.SubmitMode.
*/
package router
