package output

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/hoopstats/internal/persist"
	"github.com/courtside/hoopstats/internal/provider"
	"github.com/courtside/hoopstats/internal/report"
	"github.com/courtside/hoopstats/internal/stats"
)

var tallies = []stats.TeamSeasonTally{
	{TeamID: 1, TeamName: "Atlanta Hawks (ATL)", WonAsHome: 25, WonAsVisitor: 16, LostAsHome: 11, LostAsVisitor: 20},
	{TeamID: 2, TeamName: `Odd "Quoted", Team (ODD)`, WonAsHome: 1, WonAsVisitor: 2, LostAsHome: 3, LostAsVisitor: 4},
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" JSON ")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("xml")
	assert.ErrorContains(t, err, "stdout, csv, json, sqlite, postgres")
}

func TestWriteTeamStatsText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeamStatsText(&buf, tallies[:1]))

	assert.Equal(t, "Atlanta Hawks (ATL)\n"+
		"\twon games as home team: 25\n"+
		"\twon games as visitor team: 16\n"+
		"\tlost games as home team: 11\n"+
		"\tlost games as visitor team: 20\n\n", buf.String())
}

func TestWriteGroupedTeams(t *testing.T) {
	groups := []stats.DivisionGroup{{
		Division: "Atlantic",
		Teams:    []provider.Team{{FullName: "Boston Celtics", Abbreviation: "BOS"}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteGroupedTeams(&buf, groups))
	assert.Equal(t, "Atlantic\n    Boston Celtics (BOS)\n", buf.String())
}

func TestWritePlayerReportNotFound(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePlayerReport(&buf, report.PlayerReport{}))
	assert.Equal(t, "The tallest player: Not found\nThe heaviest player: Not found\n", buf.String())
}

func TestWriteTeamStatsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeamStatsCSV(&buf, tallies))

	assert.Equal(t,
		"Team name,Won games as home team,Won games as visitor team,Lost games as home team,Lost games as visitor team\n"+
			"Atlanta Hawks (ATL),25,16,11,20\n"+
			`"Odd ""Quoted"", Team (ODD)",1,2,3,4`+"\n",
		buf.String())
}

func TestWriteTeamStatsJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTeamStatsJSON(&buf, tallies[:1]))

	assert.Contains(t, buf.String(), "\n    {\n        \"team_name\"")
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, map[string]any{
		"team_name":                  "Atlanta Hawks (ATL)",
		"won_games_as_home_team":     float64(25),
		"won_games_as_visitor_team":  float64(16),
		"lost_games_as_home_team":    float64(11),
		"lost_games_as_visitor_team": float64(20),
	}, decoded[0])

	buf.Reset()
	require.NoError(t, WriteTeamStatsJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEmitterWritesFiles(t *testing.T) {
	dir := t.TempDir()
	e := &Emitter{Dir: dir, Logger: quietLogger()}

	require.NoError(t, e.TeamStats(context.Background(), FormatCSV, tallies))
	require.NoError(t, e.TeamStats(context.Background(), FormatJSON, tallies))

	csvBytes, err := os.ReadFile(filepath.Join(dir, "team-stats.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(csvBytes), "Atlanta Hawks (ATL),25,16,11,20")

	jsonBytes, err := os.ReadFile(filepath.Join(dir, "team-stats.json"))
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"won_games_as_home_team": 25`)
}

func TestEmitterStdout(t *testing.T) {
	var buf bytes.Buffer
	e := &Emitter{Out: &buf, Logger: quietLogger()}

	require.NoError(t, e.TeamStats(context.Background(), FormatStdout, tallies[:1]))
	assert.Contains(t, buf.String(), "won games as home team: 25")
}

type recordingStore struct {
	got []stats.TeamSeasonTally
}

func (s *recordingStore) AppendTeamStats(ctx context.Context, t []stats.TeamSeasonTally) persist.WriteResult {
	s.got = t
	return persist.WriteResult{RowsInserted: len(t)}
}

func TestEmitterPersistsAndReleases(t *testing.T) {
	store := &recordingStore{}
	released := false
	e := &Emitter{
		Logger: quietLogger(),
		OpenPostgres: func(ctx context.Context) (persist.TeamStatsStore, func(), error) {
			return store, func() { released = true }, nil
		},
	}

	require.NoError(t, e.TeamStats(context.Background(), FormatPostgres, tallies))
	assert.Equal(t, tallies, store.got)
	assert.True(t, released)
}

func TestEmitterSwallowsStoreFailures(t *testing.T) {
	released := false
	e := &Emitter{
		Logger: quietLogger(),
		OpenPostgres: func(ctx context.Context) (persist.TeamStatsStore, func(), error) {
			return nil, func() { released = true }, errors.New("connection refused")
		},
	}

	assert.NoError(t, e.TeamStats(context.Background(), FormatPostgres, tallies))
	assert.True(t, released)
	assert.NoError(t, e.TeamStats(context.Background(), FormatSQLite, tallies), "missing opener is logged, not returned")
}

func TestEmitterSQLiteOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	e := &Emitter{Logger: quietLogger(), OpenSQLite: SQLiteOpener(path)}

	require.NoError(t, e.TeamStats(context.Background(), FormatSQLite, tallies))

	store, err := persist.OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()
	n, err := store.CountRows(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestEmitterUnknownFormat(t *testing.T) {
	e := &Emitter{Logger: quietLogger()}
	assert.Error(t, e.TeamStats(context.Background(), Format("xml"), tallies))
}
