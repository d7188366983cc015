// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the vote table for the configured backend:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.

# Tables

A single table holds every vote event:

  - vote: id (monotonic surrogate key), submitted_at, branch, shipment,
    answer, origin, comment

Shipment is deliberately NOT unique: duplicate or retried submissions
create additional rows, and deduplication happens at read time in the
dashboard package.

# Backends

Two DDL variants are kept in sync:

  - postgres: BIGSERIAL id, TIMESTAMPTZ submitted_at
  - sqlite: INTEGER PRIMARY KEY AUTOINCREMENT id, TIMESTAMP submitted_at

# Indexes

Performance indexes on:

  - vote.(shipment, origin) for comment attachment lookups
  - vote.submitted_at for the recency feed
*/
package db
