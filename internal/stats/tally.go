// Package stats holds the pure computations behind the CLI: per-team season
// tallies, division grouping, player-name matching and extremal selection.
// Nothing here performs I/O.
package stats

import (
	"sort"

	"github.com/courtside/hoopstats/internal/provider"
)

// TeamSeasonTally is the regular-season record of one team split by venue.
type TeamSeasonTally struct {
	TeamID        int    `json:"-"`
	TeamName      string `json:"team_name"`
	WonAsHome     int    `json:"won_games_as_home_team"`
	WonAsVisitor  int    `json:"won_games_as_visitor_team"`
	LostAsHome    int    `json:"lost_games_as_home_team"`
	LostAsVisitor int    `json:"lost_games_as_visitor_team"`
}

// Games returns the number of decided games counted for the team.
func (t TeamSeasonTally) Games() int {
	return t.WonAsHome + t.WonAsVisitor + t.LostAsHome + t.LostAsVisitor
}

// SortByID returns a copy of teams ordered by ascending ID.
func SortByID(teams []provider.Team) []provider.Team {
	sorted := make([]provider.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted
}

// Aggregate computes one tally per team, in the order of teams. Every game
// increments at most one counter of a team; tied games and games the team did
// not play in are ignored.
func Aggregate(teams []provider.Team, games []provider.Game) []TeamSeasonTally {
	tallies := make([]TeamSeasonTally, 0, len(teams))
	for _, team := range teams {
		tally := TeamSeasonTally{TeamID: team.ID, TeamName: team.DisplayName()}
		for _, g := range games {
			switch {
			case g.HomeTeamID == team.ID && g.HomeScore > g.VisitorScore:
				tally.WonAsHome++
			case g.HomeTeamID == team.ID && g.HomeScore < g.VisitorScore:
				tally.LostAsHome++
			case g.VisitorTeamID == team.ID && g.VisitorScore > g.HomeScore:
				tally.WonAsVisitor++
			case g.VisitorTeamID == team.ID && g.VisitorScore < g.HomeScore:
				tally.LostAsVisitor++
			}
		}
		tallies = append(tallies, tally)
	}
	return tallies
}
