// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/ship-check/auth"
	"github.com/danielhkuo/ship-check/store"
	"github.com/danielhkuo/ship-check/testutil"
)

func TestExportCSV(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewExportHandler(st, cfg)

	at := time.Date(2025, 6, 1, 14, 30, 5, 0, testutil.TestLocation(t))
	testutil.InsertVote(t, conn, "PALERMO", "S1", "si", "1.2.3.4", at, "todo bien")
	// Duplicate shipment stays in the raw export
	testutil.InsertVote(t, conn, "PALERMO", "S1", "no", "1.2.3.4", at.Add(time.Minute), "")

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()

	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Expected text/csv, got %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "vote_export.csv") {
		t.Errorf("Expected attachment disposition, got %q", cd)
	}

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d records", len(records))
	}

	header := strings.Join(records[0], ",")
	if header != "id,timestamp,branch,shipment,answer,origin,comment" {
		t.Errorf("Unexpected header: %s", header)
	}

	row := records[1]
	if row[1] != "01/06/2025 14:30:05" {
		t.Errorf("Expected dd/mm/yyyy timestamp, got %q", row[1])
	}
	if row[2] != "PALERMO" || row[3] != "S1" || row[4] != "si" || row[5] != "1.2.3.4" || row[6] != "todo bien" {
		t.Errorf("Unexpected row: %v", row)
	}
}

func TestExportEmptyStore(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	handler := NewExportHandler(store.New(conn, testutil.TestLocation(t)), cfg)

	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()

	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	records, err := csv.NewReader(w.Body).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("Expected header only, got %d records", len(records))
	}
}

func TestExportKeyGuard(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	cfg.ExportKeySalt = "test-export-salt"
	handler := NewExportHandler(store.New(conn, testutil.TestLocation(t)), cfg)

	// No key
	req := httptest.NewRequest("GET", "/export", nil)
	w := httptest.NewRecorder()
	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Wrong key
	req = httptest.NewRequest("GET", "/export", nil)
	req.Header.Set("X-Export-Key", "nope")
	w = httptest.NewRecorder()
	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Derived key
	req = httptest.NewRequest("GET", "/export", nil)
	req.Header.Set("X-Export-Key", auth.GenerateExportKey(cfg.ExportKeySalt))
	w = httptest.NewRecorder()
	handler.Export(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}
