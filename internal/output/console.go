package output

import (
	"fmt"
	"io"

	"github.com/courtside/hoopstats/internal/report"
	"github.com/courtside/hoopstats/internal/stats"
)

// WriteTeamStatsText prints one block per team.
func WriteTeamStatsText(w io.Writer, tallies []stats.TeamSeasonTally) error {
	for _, t := range tallies {
		_, err := fmt.Fprintf(w,
			"%s\n\twon games as home team: %d\n\twon games as visitor team: %d\n\tlost games as home team: %d\n\tlost games as visitor team: %d\n\n",
			t.TeamName, t.WonAsHome, t.WonAsVisitor, t.LostAsHome, t.LostAsVisitor)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteGroupedTeams prints each division followed by its indented teams.
func WriteGroupedTeams(w io.Writer, groups []stats.DivisionGroup) error {
	for _, g := range groups {
		if _, err := fmt.Fprintln(w, g.Division); err != nil {
			return err
		}
		for _, t := range g.Teams {
			if _, err := fmt.Fprintf(w, "    %s (%s)\n", t.FullName, t.Abbreviation); err != nil {
				return err
			}
		}
	}
	return nil
}

// WritePlayerReport prints the tallest and heaviest lines.
func WritePlayerReport(w io.Writer, rep report.PlayerReport) error {
	for _, line := range rep.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
