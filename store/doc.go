// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists and retrieves vote records.

A Store wraps *sql.DB and the configured reporting timezone:

	st := store.New(conn, loc)

# Operations

  - CreateVote: insert one vote event, timestamped now in the reporting
    timezone; returns the new id
  - FindLatestByShipmentAndOrigin: latest vote for the pair, ties broken
    by highest id
  - SetComment: overwrite the comment column of one vote
  - AttachComment: resolver for late comments - find latest match and
    set its comment; ErrNotFound when the vote does not exist yet
  - FetchAll: id-ascending snapshot for the dashboard
  - ExportAll: raw rows for the CSV export

# Errors

Lookups that match nothing return ErrNotFound; callers branch with
errors.Is. Everything else is a wrapped storage error. The store never
retries - retry policy belongs to callers.

# Concurrency

Votes and comments for the same shipment may race. The store holds no
locks; a comment that arrives before its vote is committed simply
resolves to ErrNotFound and the submitter is told to vote first.
*/
package store
