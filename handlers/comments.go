// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/middleware"
	"github.com/danielhkuo/ship-check/models"
	"github.com/danielhkuo/ship-check/store"
)

type CommentHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewCommentHandler(st *store.Store, cfg cliparse.Config) *CommentHandler {
	return &CommentHandler{st: st, cfg: cfg}
}

// Attach handles POST /comments
//
// The comment form carries the shipment and origin it was rendered
// with, so the comment lands on the same vote even when the submitter's
// address changed between the two steps. Origin falls back to the
// request's client address when the form omits it.
func (h *CommentHandler) Attach(w http.ResponseWriter, r *http.Request) {
	var req models.AttachCommentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Shipment == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "shipment is required")
		return
	}
	if req.Origin == "" {
		req.Origin = middleware.GetClientIP(r)
	}
	if req.Origin == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "origin is required")
		return
	}

	voteID, err := h.st.AttachComment(r.Context(), req.Shipment, req.Origin, req.Comment)
	if errors.Is(err, store.ErrNotFound) {
		// Normal outcome: the comment beat its vote, or the vote was
		// never recorded. The submitter is told to vote first.
		middleware.ErrorResponse(w, http.StatusNotFound, "No vote found for this shipment")
		return
	}
	if err != nil {
		slog.Error("failed to attach comment", "error", err, "shipment", req.Shipment)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save comment")
		return
	}

	slog.Info("comment attached", "vote_id", voteID, "shipment", req.Shipment)

	middleware.JSONResponse(w, http.StatusOK, models.AttachCommentResponse{
		VoteID:  voteID,
		Message: "Comment attached",
	})
}
