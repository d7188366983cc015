// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/dashboard"
	"github.com/danielhkuo/ship-check/middleware"
	"github.com/danielhkuo/ship-check/store"
)

type DashboardHandler struct {
	st  *store.Store
	cfg cliparse.Config
	loc *time.Location
}

func NewDashboardHandler(st *store.Store, cfg cliparse.Config, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{st: st, cfg: cfg, loc: loc}
}

// GetDashboard handles GET /dashboard
//
// Fetches one snapshot of the vote store and runs the aggregation
// pipeline over it. Concurrent requests may see different snapshots
// if votes arrive in between; no coordination is attempted.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	votes, err := h.st.FetchAll(r.Context())
	if err != nil {
		slog.Error("failed to fetch votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	result := dashboard.Compute(votes, dashboard.Config{
		TopN:     h.cfg.TopN,
		RecentK:  h.cfg.RecentK,
		Location: h.loc,
	})

	middleware.JSONResponse(w, http.StatusOK, result)
}
