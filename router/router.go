// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/handlers"
	"github.com/danielhkuo/ship-check/middleware"
	"github.com/danielhkuo/ship-check/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, loc *time.Location) *http.ServeMux {
	mux := http.NewServeMux()

	st := store.New(db, loc)

	// Initialize handlers
	voteHandler := handlers.NewVoteHandler(st, cfg)
	commentHandler := handlers.NewCommentHandler(st, cfg)
	dashboardHandler := handlers.NewDashboardHandler(st, cfg, loc)
	exportHandler := handlers.NewExportHandler(st, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Survey submission (public, linked from emails)
	mux.HandleFunc("GET /vote", middleware.WithLogging(voteHandler.Submit))
	mux.HandleFunc("POST /comments", middleware.WithLogging(commentHandler.Attach))

	// Reporting
	mux.HandleFunc("GET /dashboard", middleware.WithLogging(dashboardHandler.GetDashboard))
	mux.HandleFunc("GET /export", middleware.WithLogging(exportHandler.Export))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ship-check API v1"))
	})

	return mux
}
