// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP routes using Go 1.22+ method routing.

NewRouter wires the store and handlers and returns a ServeMux:

	mux := router.NewRouter(db, cfg, loc)

# Routes

	GET  /health    → liveness probe
	GET  /          → service banner
	GET  /vote      → record a vote (query parameters)
	POST /comments  → attach a follow-up comment
	GET  /dashboard → aggregated metrics (JSON)
	GET  /export    → raw vote rows (CSV)

All domain routes go through middleware.WithLogging.
*/
package router
