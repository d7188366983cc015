// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dashboard

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/ship-check/models"
)

// Config holds the reporting knobs. Every Compute call gets the config
// explicitly; the engine keeps no state between calls.
type Config struct {
	TopN     int
	RecentK  int
	Location *time.Location
}

// Normalize canonicalizes an answer token: trimmed and lower-cased.
func Normalize(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

// IsPositive reports whether an answer counts as a "yes". Any token
// other than the normalized positive answer counts as negative; free
// form or malformed input is never an error here.
func IsPositive(answer string) bool {
	return Normalize(answer) == models.AnswerYes
}

// Dedupe reduces the raw vote set to one representative per shipment.
// Enumeration order is ascending id, so the earliest-created duplicate
// wins regardless of the order votes arrive in. Representatives come
// back in id order.
func Dedupe(votes []models.Vote) []models.Vote {
	ordered := make([]models.Vote, len(votes))
	copy(ordered, votes)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	seen := make(map[string]bool, len(ordered))
	reps := make([]models.Vote, 0, len(ordered))
	for _, v := range ordered {
		if seen[v.Shipment] {
			continue
		}
		seen[v.Shipment] = true
		reps = append(reps, v)
	}

	return reps
}

// TopPositive ranks branches by positive votes, capped to n. Ties keep
// the order branches were first seen in the deduplicated enumeration.
func TopPositive(reps []models.Vote, n int) []models.BranchCount {
	counts := make(map[string]int)
	var order []string

	for _, v := range reps {
		if !IsPositive(v.Answer) {
			continue
		}
		if _, ok := counts[v.Branch]; !ok {
			order = append(order, v.Branch)
		}
		counts[v.Branch]++
	}

	board := make([]models.BranchCount, 0, len(order))
	for _, branch := range order {
		board = append(board, models.BranchCount{Branch: branch, Count: counts[branch]})
	}

	// Stable sort preserves first-seen order for equal counts
	sort.SliceStable(board, func(i, j int) bool {
		return board[i].Count > board[j].Count
	})

	if n > 0 && len(board) > n {
		board = board[:n]
	}
	return board
}

// PositiveRates ranks branches by positive percentage, capped to n.
// Branches with zero total never appear (their rate is undefined, not
// zero). Ties break by branch name ascending.
func PositiveRates(reps []models.Vote, n int) []models.BranchRate {
	totals := make(map[string]int)
	positives := make(map[string]int)

	for _, v := range reps {
		totals[v.Branch]++
		if IsPositive(v.Answer) {
			positives[v.Branch]++
		}
	}

	rates := make([]models.BranchRate, 0, len(totals))
	for branch, total := range totals {
		rates = append(rates, models.BranchRate{
			Branch:   branch,
			Positive: positives[branch],
			Total:    total,
			Rate:     round1(float64(positives[branch]) / float64(total) * 100),
		})
	}

	sort.Slice(rates, func(i, j int) bool {
		if rates[i].Rate != rates[j].Rate {
			return rates[i].Rate > rates[j].Rate
		}
		return rates[i].Branch < rates[j].Branch
	})

	if n > 0 && len(rates) > n {
		rates = rates[:n]
	}
	return rates
}

// DailySeries buckets representatives by calendar date in loc. The
// series is sparse: a date with no votes is omitted, not zero-filled.
func DailySeries(reps []models.Vote, loc *time.Location) models.DailySeries {
	type dayCount struct {
		total, yes, no int
	}
	days := make(map[string]*dayCount)

	for _, v := range reps {
		date := v.SubmittedAt.In(loc).Format("2006-01-02")
		d, ok := days[date]
		if !ok {
			d = &dayCount{}
			days[date] = d
		}
		d.total++
		if IsPositive(v.Answer) {
			d.yes++
		} else {
			d.no++
		}
	}

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	// ISO dates sort chronologically as strings
	sort.Strings(dates)

	series := models.DailySeries{
		Dates: dates,
		Total: make([]int, len(dates)),
		Yes:   make([]int, len(dates)),
		No:    make([]int, len(dates)),
	}
	for i, date := range dates {
		series.Total[i] = days[date].total
		series.Yes[i] = days[date].yes
		series.No[i] = days[date].no
	}

	return series
}

// RecentFeed returns the k most recent representatives, newest first.
// Equal timestamps fall back to id descending.
func RecentFeed(reps []models.Vote, k int) []models.FeedEntry {
	ordered := make([]models.Vote, len(reps))
	copy(ordered, reps)
	sort.Slice(ordered, func(i, j int) bool {
		if !ordered[i].SubmittedAt.Equal(ordered[j].SubmittedAt) {
			return ordered[i].SubmittedAt.After(ordered[j].SubmittedAt)
		}
		return ordered[i].ID > ordered[j].ID
	})

	if k > 0 && len(ordered) > k {
		ordered = ordered[:k]
	}

	feed := make([]models.FeedEntry, len(ordered))
	for i, v := range ordered {
		feed[i] = models.FeedEntry{
			Shipment:    v.Shipment,
			SubmittedAt: v.SubmittedAt,
			Branch:      v.Branch,
			Answer:      Normalize(v.Answer),
			Comment:     v.Comment,
		}
	}
	return feed
}

// Summarize computes the headline totals over the deduplicated set.
// An empty set yields zeroes, never a division error.
func Summarize(reps []models.Vote) models.Summary {
	var s models.Summary
	s.TotalVotes = len(reps)

	counts := make(map[string]int)
	for _, v := range reps {
		if IsPositive(v.Answer) {
			s.PositiveVotes++
			counts[v.Branch]++
		}
	}

	if s.TotalVotes > 0 {
		s.PositiveRate = round1(float64(s.PositiveVotes) / float64(s.TotalVotes) * 100)
	}

	for branch, count := range counts {
		if s.TopBranch == "" ||
			count > counts[s.TopBranch] ||
			(count == counts[s.TopBranch] && branch < s.TopBranch) {
			s.TopBranch = branch
		}
	}

	return s
}

// Compute runs the full pipeline over one snapshot: dedupe by shipment,
// then every metric over the same representative set.
func Compute(votes []models.Vote, cfg Config) models.DashboardResult {
	reps := Dedupe(votes)

	return models.DashboardResult{
		TopPositive: TopPositive(reps, cfg.TopN),
		Rates:       PositiveRates(reps, cfg.TopN),
		Daily:       DailySeries(reps, cfg.Location),
		Recent:      RecentFeed(reps, cfg.RecentK),
		Summary:     Summarize(reps),
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
