// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/ship-check/models"
	"github.com/danielhkuo/ship-check/store"
	"github.com/danielhkuo/ship-check/testutil"
)

func TestAttachComment(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewCommentHandler(st, cfg)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, testutil.TestLocation(t))
	voteID := testutil.InsertVote(t, conn, "PALERMO", "S1", "si", "1.2.3.4", at, "")

	req := testutil.MakeRequest("POST", "/comments", models.AttachCommentRequest{
		Shipment: "S1",
		Origin:   "1.2.3.4",
		Comment:  "llegó en tiempo",
	}, nil)
	w := httptest.NewRecorder()

	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AttachCommentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoteID != voteID {
		t.Errorf("Expected vote id %d, got %d", voteID, resp.VoteID)
	}

	var comment string
	if err := conn.QueryRow(`SELECT comment FROM vote WHERE id = $1`, voteID).Scan(&comment); err != nil {
		t.Fatalf("Failed to read stored vote: %v", err)
	}
	if comment != "llegó en tiempo" {
		t.Errorf("Expected comment stored, got %q", comment)
	}
}

func TestAttachCommentNoPriorVote(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewCommentHandler(st, cfg)

	req := testutil.MakeRequest("POST", "/comments", models.AttachCommentRequest{
		Shipment: "S1",
		Origin:   "1.2.3.4",
		Comment:  "hola",
	}, nil)
	w := httptest.NewRecorder()

	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestAttachCommentOriginFallsBackToClientIP(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewCommentHandler(st, cfg)

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, testutil.TestLocation(t))
	voteID := testutil.InsertVote(t, conn, "PALERMO", "S1", "si", "203.0.113.9", at, "")

	// No origin in the body: it comes from the request address
	req := testutil.MakeRequest("POST", "/comments", models.AttachCommentRequest{
		Shipment: "S1",
		Comment:  "gracias",
	}, map[string]string{"X-Forwarded-For": "203.0.113.9"})
	w := httptest.NewRecorder()

	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AttachCommentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoteID != voteID {
		t.Errorf("Expected vote id %d, got %d", voteID, resp.VoteID)
	}
}

func TestAttachCommentValidation(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewCommentHandler(st, cfg)

	// Missing shipment
	req := testutil.MakeRequest("POST", "/comments", models.AttachCommentRequest{
		Origin:  "1.2.3.4",
		Comment: "hola",
	}, nil)
	w := httptest.NewRecorder()
	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	// Malformed body
	req = httptest.NewRequest("POST", "/comments", nil)
	w = httptest.NewRecorder()
	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAttachCommentPicksLatestDuplicate(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	cfg := testutil.GetTestConfig()
	st := store.New(conn, testutil.TestLocation(t))
	handler := NewCommentHandler(st, cfg)

	loc := testutil.TestLocation(t)
	testutil.InsertVote(t, conn, "PALERMO", "S1", "si", "1.2.3.4",
		time.Date(2025, 6, 1, 10, 0, 0, 0, loc), "")
	laterID := testutil.InsertVote(t, conn, "PALERMO", "S1", "si", "1.2.3.4",
		time.Date(2025, 6, 1, 12, 0, 0, 0, loc), "")

	req := testutil.MakeRequest("POST", "/comments", models.AttachCommentRequest{
		Shipment: "S1",
		Origin:   "1.2.3.4",
		Comment:  "segunda entrega",
	}, nil)
	w := httptest.NewRecorder()

	handler.Attach(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AttachCommentResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.VoteID != laterID {
		t.Errorf("Expected latest vote %d, got %d", laterID, resp.VoteID)
	}
}
