package persist

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courtside/hoopstats/internal/db"
	"github.com/courtside/hoopstats/internal/stats"
)

// execer is the slice of *pgxpool.Pool the Postgres store needs.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Postgres appends tallies through the insert statement prepared by db.New.
type Postgres struct {
	exec execer
}

// NewPostgres wraps a pool (or anything with the same Exec).
func NewPostgres(exec execer) *Postgres {
	return &Postgres{exec: exec}
}

// AppendTeamStats inserts one row per tally. A failed row is recorded and the
// remaining rows are still attempted.
func (p *Postgres) AppendTeamStats(ctx context.Context, tallies []stats.TeamSeasonTally) WriteResult {
	var result WriteResult
	for _, t := range tallies {
		_, err := p.exec.Exec(ctx, db.StmtInsertTeamStats,
			t.TeamName, t.WonAsHome, t.WonAsVisitor, t.LostAsHome, t.LostAsVisitor)
		if err != nil {
			result.AddErrorf("insert team stats %q: %v", t.TeamName, err)
			continue
		}
		result.RowsInserted++
	}
	return result
}
