// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Answer constants. Votes arrive from Spanish-language survey links,
// so the positive token is "si". Anything that does not normalize to
// AnswerYes counts as negative.
const (
	AnswerYes = "si"
	AnswerNo  = "no"
)

// Database backend constants
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Request types

type AttachCommentRequest struct {
	Shipment string `json:"shipment"`
	Origin   string `json:"origin,omitempty"`
	Comment  string `json:"comment"`
}

// Response types

type SubmitVoteResponse struct {
	VoteID int64 `json:"vote_id"`
	// CommentPrompt tells the caller whether to show the follow-up
	// comment form (only after a positive answer).
	CommentPrompt bool `json:"comment_prompt"`
}

type AttachCommentResponse struct {
	VoteID  int64  `json:"vote_id"`
	Message string `json:"message"`
}

// Domain types

// Vote is one submitted vote event. Shipment is the correlation key for
// a survey episode and is not unique: retried or duplicated submissions
// produce multiple rows sharing it.
type Vote struct {
	ID          int64     `json:"id"`
	SubmittedAt time.Time `json:"submitted_at"`
	Branch      string    `json:"branch"`
	Shipment    string    `json:"shipment"`
	Answer      string    `json:"answer"`
	Origin      string    `json:"-"` // Never expose in JSON
	Comment     string    `json:"comment"`
}

// Dashboard types

type BranchCount struct {
	Branch string `json:"branch"`
	Count  int    `json:"count"`
}

type BranchRate struct {
	Branch   string  `json:"branch"`
	Positive int     `json:"positive"`
	Total    int     `json:"total"`
	Rate     float64 `json:"rate"` // percentage, one decimal
}

// DailySeries is a sparse time series: dates with no activity are
// omitted. Dates, Total, Yes and No are index-aligned.
type DailySeries struct {
	Dates []string `json:"dates"` // YYYY-MM-DD, ascending
	Total []int    `json:"total"`
	Yes   []int    `json:"yes"`
	No    []int    `json:"no"`
}

type FeedEntry struct {
	Shipment    string    `json:"shipment"`
	SubmittedAt time.Time `json:"submitted_at"`
	Branch      string    `json:"branch"`
	Answer      string    `json:"answer"` // normalized
	Comment     string    `json:"comment"`
}

type Summary struct {
	TotalVotes    int     `json:"total_votes"`
	PositiveVotes int     `json:"positive_votes"`
	PositiveRate  float64 `json:"positive_rate"` // percentage, one decimal
	TopBranch     string  `json:"top_branch"`    // empty when no positive votes
}

// DashboardResult bundles every metric computed over one deduplicated
// snapshot of the vote store.
type DashboardResult struct {
	TopPositive []BranchCount `json:"top_positive"`
	Rates       []BranchRate  `json:"rates"`
	Daily       DailySeries   `json:"daily"`
	Recent      []FeedEntry   `json:"recent"`
	Summary     Summary       `json:"summary"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
