// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dashboard computes reporting metrics over a vote snapshot.

The engine is a pure transformation: it performs no I/O, holds no
state, and builds fresh accumulators on every call. Callers fetch a
snapshot from the store and hand it over:

	votes, _ := st.FetchAll(ctx)
	result := dashboard.Compute(votes, dashboard.Config{
		TopN:     cfg.TopN,
		RecentK:  cfg.RecentK,
		Location: loc,
	})

# Pipeline

Compute runs six steps over one snapshot:

 1. Dedupe: one representative per shipment. Enumeration order is
    ascending id, so the earliest-created duplicate wins.
 2. TopPositive: positive votes per branch, count descending, ties in
    first-seen order.
 3. PositiveRates: positive percentage per branch, one decimal, rate
    descending, ties by branch name.
 4. DailySeries: sparse per-day totals with yes/no split, dates
    ascending in the configured timezone.
 5. RecentFeed: newest k representatives, timestamp descending, ties by
    id descending.
 6. Summarize: deduplicated totals, overall positive rate, top branch.

Steps 2-6 all run over the same deduplicated set. Raw row counts for
auditing come from store.ExportAll and are never mixed in.

# Answer Normalization

Answers are free text. Normalize trims and lower-cases; only the token
"si" counts as positive, everything else is negative. Malformed input
therefore skews negative instead of failing - deliberate, so future
answer values cannot break aggregation.
*/
package dashboard
