// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ship-check API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - VoteHandler: vote submission from survey links
  - CommentHandler: follow-up comment attachment
  - DashboardHandler: aggregated reporting
  - ExportHandler: raw CSV export

Handlers are created via constructor functions that accept *store.Store
and Config:

	voteHandler := handlers.NewVoteHandler(st, cfg)

# Survey Flow

A customer clicks a yes/no link for a shipment, then optionally leaves
a comment:

	GET  /vote?branch=X&answer=si&shipment=Y → Submit (records vote)
	POST /comments                           → Attach (binds comment)

Submit captures the client address as the comment correlation key and
tells the caller whether to show the comment form (positive answers
only). Attach resolves the latest vote for (shipment, origin) and sets
its comment; a comment with no matching vote is a 404, never a new row.

# Reporting

	GET /dashboard → GetDashboard (deduplicated metrics)
	GET /export    → Export (raw rows, CSV)

GetDashboard runs the pure aggregation pipeline in the dashboard
package over a FetchAll snapshot. Export bypasses deduplication on
purpose and requires X-Export-Key when an export salt is configured.
*/
package handlers
