package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/courtside/hoopstats/internal/stats"
)

var csvHeader = []string{
	"Team name",
	"Won games as home team",
	"Won games as visitor team",
	"Lost games as home team",
	"Lost games as visitor team",
}

// WriteTeamStatsCSV writes the header and one row per tally.
func WriteTeamStatsCSV(w io.Writer, tallies []stats.TeamSeasonTally) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, t := range tallies {
		record := []string{
			t.TeamName,
			strconv.Itoa(t.WonAsHome),
			strconv.Itoa(t.WonAsVisitor),
			strconv.Itoa(t.LostAsHome),
			strconv.Itoa(t.LostAsVisitor),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTeamStatsJSON writes the tallies as a pretty-printed array.
func WriteTeamStatsJSON(w io.Writer, tallies []stats.TeamSeasonTally) error {
	if tallies == nil {
		tallies = []stats.TeamSeasonTally{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(tallies)
}

// writeFile creates dir/name, truncating any previous file, and hands it to
// write.
func writeFile(dir, name string, write func(io.Writer) error) (string, error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}
