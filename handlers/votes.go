// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/dashboard"
	"github.com/danielhkuo/ship-check/middleware"
	"github.com/danielhkuo/ship-check/models"
	"github.com/danielhkuo/ship-check/store"
)

type VoteHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewVoteHandler(st *store.Store, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{st: st, cfg: cfg}
}

// Submit handles GET /vote?branch=...&answer=...&shipment=...
//
// The link is clicked straight from a survey email, hence GET with
// query parameters rather than a JSON POST. The origin address is
// captured from the request and stored alongside the vote as the
// correlation key for a follow-up comment.
func (h *VoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	params := voteParams(r)

	branch := params.Get("branch")
	answer := params.Get("answer")
	shipment := params.Get("shipment")
	origin := middleware.GetClientIP(r)

	if branch == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "branch is required")
		return
	}
	if answer == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "answer is required")
		return
	}
	if shipment == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "shipment is required")
		return
	}
	if origin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "could not determine client address")
		return
	}

	voteID, err := h.st.CreateVote(r.Context(), branch, shipment, answer, origin)
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "shipment", shipment)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save vote")
		return
	}

	slog.Info("vote recorded",
		"vote_id", voteID,
		"branch", branch,
		"shipment", shipment,
		"answer", dashboard.Normalize(answer),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID: voteID,
		// Only positive answers get the comment follow-up form
		CommentPrompt: dashboard.IsPositive(answer),
	})
}

// voteParams parses the query string. Some mail clients rewrite the
// "&" separators of survey links to ";", so a query with semicolons
// and no ampersands is re-split before parsing.
func voteParams(r *http.Request) url.Values {
	raw := r.URL.RawQuery
	if strings.Contains(raw, ";") && !strings.Contains(raw, "&") {
		params, err := url.ParseQuery(strings.ReplaceAll(raw, ";", "&"))
		if err == nil {
			return params
		}
	}
	return r.URL.Query()
}
