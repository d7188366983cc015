// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing.

Configuration comes from environment variables (parsed with
github.com/caarlos0/env) with CLI flags taking precedence:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 10000 -d "postgres://..." -t postgres

# Settings

Required:

  - DATABASE_URL (-d): connection string

Optional:

  - PORT (-p): server port (default: 10000)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: postgres)
  - REPORT_TIMEZONE (-tz): IANA timezone for timestamps and the daily
    series (default: America/Argentina/Buenos_Aires)
  - DASHBOARD_TOP_N (-top-n): leaderboard size (default: 10)
  - DASHBOARD_RECENT_K (-recent-k): recency feed size (default: 100)
  - EXPORT_KEY_SALT (-export-salt): when set, the CSV export endpoint
    requires a matching X-Export-Key header

The resulting Config is passed explicitly into the store, handlers and
dashboard engine; there is no process-wide configuration state.
*/
package cliparse
