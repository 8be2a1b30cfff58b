// Command hoopstats queries the BallDontLie API for NBA teams, season records
// and players.
//
// Usage:
//
//	hoopstats grouped-teams
//	hoopstats team-stats --season 2021
//	hoopstats team-stats --season 2021 --output csv
//	hoopstats player-stats --name "De'Marcus"
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/courtside/hoopstats/internal/config"
	"github.com/courtside/hoopstats/internal/db"
	"github.com/courtside/hoopstats/internal/output"
	"github.com/courtside/hoopstats/internal/persist"
	"github.com/courtside/hoopstats/internal/provider/bdl"
	"github.com/courtside/hoopstats/internal/report"
	"github.com/courtside/hoopstats/internal/validate"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "hoopstats",
		Short:        "NBA team and player statistics from BallDontLie",
		SilenceUsage: true,
	}

	root.AddCommand(groupedTeamsCmd())
	root.AddCommand(teamStatsCmd())
	root.AddCommand(playerStatsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// grouped-teams command
// --------------------------------------------------------------------------

func groupedTeamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grouped-teams",
		Short: "List all teams grouped by division",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, cfg *config.Config, handler *bdl.NBAHandler) error {
				groups, err := report.GroupedTeams(ctx, handler, logger)
				if err != nil {
					return err
				}
				return output.WriteGroupedTeams(cmd.OutOrStdout(), groups)
			})
		},
	}
}

// --------------------------------------------------------------------------
// team-stats command
// --------------------------------------------------------------------------

func teamStatsCmd() *cobra.Command {
	var (
		season int
		format string
	)
	cmd := &cobra.Command{
		Use:   "team-stats",
		Short: "Home/visitor wins and losses per team for a regular season",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := output.ParseFormat(format)
			if err != nil {
				return err
			}
			if err := validate.Season(season, time.Now()); err != nil {
				return err
			}

			return run(func(ctx context.Context, cfg *config.Config, handler *bdl.NBAHandler) error {
				logger.Info("Running team-stats", "season", season, "output", out)
				start := time.Now()
				tallies, err := report.TeamStats(ctx, handler, season, logger)
				if err != nil {
					return err
				}

				emitter := output.NewEmitter(cfg, output.SQLiteOpener(cfg.SQLitePath), postgresOpener(cfg), logger)
				emitter.Out = cmd.OutOrStdout()
				if err := emitter.TeamStats(ctx, out, tallies); err != nil {
					return err
				}
				logger.Info("team-stats finished", "duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&season, "season", "s", 0, fmt.Sprintf("Season year (%d to current year)", config.FirstSeason))
	cmd.Flags().StringVarP(&format, "output", "o", string(output.FormatStdout), "Output: "+formatList())
	_ = cmd.MarkFlagRequired("season")
	return cmd
}

// --------------------------------------------------------------------------
// player-stats command
// --------------------------------------------------------------------------

func playerStatsCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "player-stats",
		Short: "Tallest and heaviest players matching a name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.PlayerName(name); err != nil {
				return err
			}

			return run(func(ctx context.Context, cfg *config.Config, handler *bdl.NBAHandler) error {
				logger.Info("Running player-stats", "name", name)
				rep, err := report.PlayerStats(ctx, handler, name, logger)
				if err != nil {
					return err
				}
				return output.WritePlayerReport(cmd.OutOrStdout(), rep)
			})
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Player first or last name")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// run handles config loading, client construction, and context cancellation.
func run(fn func(ctx context.Context, cfg *config.Config, handler *bdl.NBAHandler) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg := config.Load()
	client := bdl.NewClient(bdl.Config{
		BaseURL:           cfg.BDLBaseURL,
		APIKey:            cfg.BDLAPIKey,
		RequestsPerMinute: cfg.BDLRequestsPerMinute,
		Timeout:           cfg.BDLTimeout,
	}, logger)

	if err := fn(ctx, cfg, bdl.NewNBAHandler(client, logger)); err != nil {
		if tErr, ok := bdl.AsTransportError(err); ok {
			logger.Error("API request failed", "path", tErr.Path, "status", tErr.StatusCode, "error", tErr.Err)
		}
		return err
	}
	return nil
}

// postgresOpener connects a fresh pool for a single write.
func postgresOpener(cfg *config.Config) output.StoreOpener {
	return func(ctx context.Context) (persist.TeamStatsStore, func(), error) {
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, func() {}, fmt.Errorf("connect to database: %w", err)
		}
		return persist.NewPostgres(pool), pool.Close, nil
	}
}

func formatList() string {
	names := make([]string, 0, len(output.Formats()))
	for _, f := range output.Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
