// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ship-check/auth"
	"github.com/danielhkuo/ship-check/cliparse"
	"github.com/danielhkuo/ship-check/middleware"
	"github.com/danielhkuo/ship-check/store"
)

// exportTimeFormat matches the dd/mm/yyyy layout the reporting team's
// spreadsheets expect.
const exportTimeFormat = "02/01/2006 15:04:05"

type ExportHandler struct {
	st  *store.Store
	cfg cliparse.Config
}

func NewExportHandler(st *store.Store, cfg cliparse.Config) *ExportHandler {
	return &ExportHandler{st: st, cfg: cfg}
}

// Export handles GET /export
//
// Streams every raw vote row as CSV. This is the audit view: rows are
// NOT deduplicated and must never be compared against dashboard
// figures. Guarded by X-Export-Key when an export salt is configured.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	if h.cfg.ExportKeySalt != "" {
		key := r.Header.Get("X-Export-Key")
		if err := auth.ValidateExportKey(key, h.cfg.ExportKeySalt); err != nil {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid export key")
			return
		}
	}

	votes, err := h.st.ExportAll(r.Context())
	if err != nil {
		slog.Error("failed to fetch votes for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename=vote_export.csv`)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "timestamp", "branch", "shipment", "answer", "origin", "comment"}); err != nil {
		slog.Error("failed to write CSV header", "error", err)
		return
	}

	for _, v := range votes {
		record := []string{
			strconv.FormatInt(v.ID, 10),
			v.SubmittedAt.Format(exportTimeFormat),
			v.Branch,
			v.Shipment,
			v.Answer,
			v.Origin,
			v.Comment,
		}
		if err := cw.Write(record); err != nil {
			slog.Error("failed to write CSV record", "error", err, "vote_id", v.ID)
			return
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		slog.Error("failed to flush CSV", "error", err)
	}

	slog.Info("export generated", "rows", len(votes))
}
