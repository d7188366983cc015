// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the ship-check API server.

ship-check collects yes/no delivery-satisfaction votes tied to a
shipment and branch, reconciles follow-up comments onto the right vote,
and serves aggregate reporting plus a raw CSV export.

# Starting the Server

The server reads configuration from the environment (a local .env file
is honored) or CLI flags:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 10000 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - PORT (-p): server port (default: 10000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - REPORT_TIMEZONE (-tz): reporting timezone
    (default: America/Argentina/Buenos_Aires)
  - DASHBOARD_TOP_N (-top-n): leaderboard size (default: 10)
  - DASHBOARD_RECENT_K (-recent-k): recency feed size (default: 100)
  - EXPORT_KEY_SALT (-export-salt): guards the CSV export

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (votes, comments, dashboard, export)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, client IP extraction
  - models: Request/response and domain types
  - store: Vote persistence and comment attachment
  - dashboard: Pure aggregation pipeline over vote snapshots
  - auth: Export key generation and validation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
