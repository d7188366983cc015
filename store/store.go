// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/ship-check/models"
)

// ErrNotFound is returned when no vote matches a lookup. It is a normal
// outcome (e.g. a comment arriving before its vote), not a failure of
// the store.
var ErrNotFound = errors.New("no matching vote")

// Store wraps the vote table. All reporting timestamps are assigned in
// loc at creation time and immutable afterwards.
type Store struct {
	db  *sql.DB
	loc *time.Location
}

func New(db *sql.DB, loc *time.Location) *Store {
	return &Store{db: db, loc: loc}
}

// CreateVote inserts one vote event and returns its id. The comment
// starts empty; ids are assigned by the database and never reused.
func (s *Store) CreateVote(ctx context.Context, branch, shipment, answer, origin string) (int64, error) {
	submittedAt := time.Now().In(s.loc)

	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO vote (submitted_at, branch, shipment, answer, origin, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, submittedAt, branch, shipment, answer, origin, "").Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert vote: %w", err)
	}

	return id, nil
}

// FindLatestByShipmentAndOrigin returns the most recent vote for the
// pair. Equal timestamps fall back to the highest id, i.e. the most
// recently created row.
func (s *Store) FindLatestByShipmentAndOrigin(ctx context.Context, shipment, origin string) (models.Vote, error) {
	var v models.Vote
	err := s.db.QueryRowContext(ctx, `
		SELECT id, submitted_at, branch, shipment, answer, origin, comment
		FROM vote
		WHERE shipment = $1 AND origin = $2
		ORDER BY submitted_at DESC, id DESC
		LIMIT 1
	`, shipment, origin).Scan(
		&v.ID, &v.SubmittedAt, &v.Branch, &v.Shipment, &v.Answer, &v.Origin, &v.Comment,
	)

	if err == sql.ErrNoRows {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("query vote by shipment and origin: %w", err)
	}

	return v, nil
}

// SetComment overwrites the comment column of one vote. Other columns
// are untouched.
func (s *Store) SetComment(ctx context.Context, id int64, text string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE vote SET comment = $1 WHERE id = $2
	`, text, id)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// AttachComment binds a follow-up comment to the vote it belongs to:
// the latest (shipment, origin) match, ties broken by highest id. It
// never creates a vote; a comment arriving before its vote is plain
// ErrNotFound. A second comment for the same vote overwrites the first.
func (s *Store) AttachComment(ctx context.Context, shipment, origin, text string) (int64, error) {
	v, err := s.FindLatestByShipmentAndOrigin(ctx, shipment, origin)
	if err != nil {
		return 0, err
	}

	if err := s.SetComment(ctx, v.ID, strings.TrimSpace(text)); err != nil {
		return 0, err
	}

	return v.ID, nil
}

// FetchAll returns a snapshot of every vote in ascending id order, the
// enumeration order the dashboard dedupes in.
func (s *Store) FetchAll(ctx context.Context) ([]models.Vote, error) {
	return s.selectAll(ctx)
}

// ExportAll returns the raw, non-deduplicated rows for the audit
// export. It deliberately bypasses the dashboard engine.
func (s *Store) ExportAll(ctx context.Context) ([]models.Vote, error) {
	return s.selectAll(ctx)
}

func (s *Store) selectAll(ctx context.Context) ([]models.Vote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, submitted_at, branch, shipment, answer, origin, comment
		FROM vote
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query votes: %w", err)
	}
	defer rows.Close()

	var votes []models.Vote
	for rows.Next() {
		var v models.Vote
		if err := rows.Scan(
			&v.ID, &v.SubmittedAt, &v.Branch, &v.Shipment, &v.Answer, &v.Origin, &v.Comment,
		); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		votes = append(votes, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}

	return votes, nil
}
