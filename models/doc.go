// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AttachCommentRequest: shipment, origin (optional), comment

Vote submission has no request type: it arrives as query parameters on a
GET link clicked from a survey email.

# Response Types

Types for JSON responses:

  - SubmitVoteResponse: vote_id, comment_prompt
  - AttachCommentResponse: vote_id, message
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Vote: one submitted vote event (id, submitted_at, branch, shipment,
    answer, origin, comment)
  - BranchCount: leaderboard entry (positive votes per branch)
  - BranchRate: positive-rate entry with the underlying counts
  - DailySeries: sparse per-day totals with yes/no split
  - FeedEntry: one row of the recency feed
  - Summary: deduplicated totals and the leading branch
  - DashboardResult: all dashboard metrics for one snapshot

The Origin field of Vote is never serialized; it exists only for comment
attachment and the raw export.

# Constants

Answer tokens:

	AnswerYes = "si"
	AnswerNo  = "no"

Database backends:

	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
*/
package models
