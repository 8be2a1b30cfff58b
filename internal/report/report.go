// Package report runs the fetch → compute flows behind each CLI command and
// API endpoint. It owns no state; every call fetches fresh data.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/courtside/hoopstats/internal/provider"
	"github.com/courtside/hoopstats/internal/stats"
)

// Source is the upstream data the reports are built from. *bdl.NBAHandler
// satisfies it.
type Source interface {
	GetTeams(ctx context.Context) ([]provider.Team, error)
	GetSeasonGames(ctx context.Context, season int) ([]provider.Game, error)
	SearchPlayers(ctx context.Context, query string) ([]provider.Player, error)
}

// TeamStats fetches every regular-season game of season and tallies it per
// team, teams ordered by ID.
func TeamStats(ctx context.Context, src Source, season int, logger *slog.Logger) ([]stats.TeamSeasonTally, error) {
	logger = orDefault(logger)

	logger.Info("Fetching season games...", "season", season)
	games, err := src.GetSeasonGames(ctx, season)
	if err != nil {
		return nil, err
	}

	teams, err := src.GetTeams(ctx)
	if err != nil {
		return nil, err
	}

	tallies := stats.Aggregate(stats.SortByID(teams), games)
	logger.Info("Team stats computed", "season", season, "teams", len(tallies), "games", len(games))
	return tallies, nil
}

// GroupedTeams returns all teams bucketed by division.
func GroupedTeams(ctx context.Context, src Source, logger *slog.Logger) ([]stats.DivisionGroup, error) {
	logger = orDefault(logger)

	teams, err := src.GetTeams(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("Grouping teams by division...", "teams", len(teams))
	return stats.GroupByDivision(teams), nil
}

// PlayerReport is the outcome of a player search. Tallest and Heaviest are
// nil when no matched player has the attribute on record.
type PlayerReport struct {
	Query    string            `json:"query"`
	Matched  []provider.Player `json:"matched"`
	Tallest  *stats.Ranked     `json:"tallest"`
	Heaviest *stats.Ranked     `json:"heaviest"`
}

// PlayerStats searches for name, drops the upstream false positives and
// selects the tallest and heaviest of the remaining players.
func PlayerStats(ctx context.Context, src Source, name string, logger *slog.Logger) (PlayerReport, error) {
	logger = orDefault(logger)

	query := stats.NormalizeQuery(strings.TrimSpace(name))
	candidates, err := src.SearchPlayers(ctx, query)
	if err != nil {
		return PlayerReport{}, err
	}

	matched := stats.MatchPlayers(query, candidates)
	logger.Info("Players found", "query", query, "candidates", len(candidates), "matched", len(matched))

	rep := PlayerReport{Query: query, Matched: matched}
	if r, ok := stats.Tallest(matched); ok {
		rep.Tallest = &r
	}
	if r, ok := stats.Heaviest(matched); ok {
		rep.Heaviest = &r
	}
	return rep, nil
}

// Lines renders the report the way the CLI prints it.
func (r PlayerReport) Lines() []string {
	tallest := "The tallest player: Not found"
	if r.Tallest != nil {
		tallest = fmt.Sprintf("The tallest player: %s %s meters", r.Tallest.Player.FullName(), r.Tallest.Value)
	}
	heaviest := "The heaviest player: Not found"
	if r.Heaviest != nil {
		heaviest = fmt.Sprintf("The heaviest player: %s %s kilograms", r.Heaviest.Player.FullName(), r.Heaviest.Value)
	}
	return []string{tallest, heaviest}
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
