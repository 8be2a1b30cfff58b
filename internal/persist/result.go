// Package persist appends team tallies to a relational store. Stores never
// abort a run: failures are collected into a WriteResult for the caller to
// log.
package persist

import (
	"context"
	"fmt"

	"github.com/courtside/hoopstats/internal/stats"
)

// TeamStatsStore appends one row per tally to the team_stats table.
type TeamStatsStore interface {
	AppendTeamStats(ctx context.Context, tallies []stats.TeamSeasonTally) WriteResult
}

// WriteResult tracks counts and errors from a write operation.
type WriteResult struct {
	RowsInserted int
	Errors       []string
}

// AddErrorf records a formatted error message.
func (r *WriteResult) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// OK reports whether the write finished without errors.
func (r *WriteResult) OK() bool {
	return len(r.Errors) == 0
}

// Summary returns a human-readable summary of the write.
func (r *WriteResult) Summary() string {
	return fmt.Sprintf("rows=%d errors=%d", r.RowsInserted, len(r.Errors))
}
