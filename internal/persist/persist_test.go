package persist

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/hoopstats/internal/db"
	"github.com/courtside/hoopstats/internal/stats"
)

var sampleTallies = []stats.TeamSeasonTally{
	{TeamID: 1, TeamName: "Atlanta Hawks (ATL)", WonAsHome: 25, WonAsVisitor: 16, LostAsHome: 11, LostAsVisitor: 20},
	{TeamID: 2, TeamName: "Boston Celtics (BOS)", WonAsHome: 21, WonAsVisitor: 15, LostAsHome: 15, LostAsVisitor: 21},
}

type execCall struct {
	sql  string
	args []any
}

type fakeExecer struct {
	calls  []execCall
	failOn string
}

func (f *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, execCall{sql: sql, args: args})
	if len(args) > 0 && args[0] == f.failOn {
		return pgconn.CommandTag{}, errors.New("constraint violated")
	}
	return pgconn.NewCommandTag("INSERT 0 1"), nil
}

func TestPostgresAppendUsesPreparedInsert(t *testing.T) {
	exec := &fakeExecer{}

	result := NewPostgres(exec).AppendTeamStats(context.Background(), sampleTallies)

	assert.True(t, result.OK())
	assert.Equal(t, 2, result.RowsInserted)
	require.Len(t, exec.calls, 2)
	assert.Equal(t, db.StmtInsertTeamStats, exec.calls[0].sql)
	assert.Equal(t, []any{"Atlanta Hawks (ATL)", 25, 16, 11, 20}, exec.calls[0].args)
}

func TestPostgresAppendKeepsGoingAfterRowFailure(t *testing.T) {
	exec := &fakeExecer{failOn: "Atlanta Hawks (ATL)"}

	result := NewPostgres(exec).AppendTeamStats(context.Background(), sampleTallies)

	assert.False(t, result.OK())
	assert.Equal(t, 1, result.RowsInserted)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Atlanta Hawks")
	assert.Equal(t, "rows=1 errors=1", result.Summary())
}

func TestSQLiteAppendAccumulatesAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team_stats.db")
	ctx := context.Background()

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	first := store.AppendTeamStats(ctx, sampleTallies)
	assert.True(t, first.OK())
	assert.Equal(t, 2, first.RowsInserted)
	require.NoError(t, store.Close())

	// a second run appends rather than replacing
	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	second := store.AppendTeamStats(ctx, sampleTallies)
	assert.True(t, second.OK())

	n, err := store.CountRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)

	var row teamStatRow
	require.NoError(t, store.db.Where("team_name = ?", "Boston Celtics (BOS)").First(&row).Error)
	assert.Equal(t, 21, row.WonGamesAsHomeTeam)
	assert.Equal(t, 21, row.LostGamesAsVisitorTeam)
}

func TestSQLiteAppendNothing(t *testing.T) {
	store, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	result := store.AppendTeamStats(context.Background(), nil)
	assert.True(t, result.OK())
	assert.Zero(t, result.RowsInserted)
}
