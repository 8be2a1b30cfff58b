// Package db provides a pgxpool-based connection pool with schema bootstrap
// and prepared statement registration.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courtside/hoopstats/internal/config"
)

// StmtInsertTeamStats is the prepared insert registered on every connection.
const StmtInsertTeamStats = "insert_team_stats"

// createTeamStatsTable has no key or unique constraint: every run appends.
const createTeamStatsTable = `CREATE TABLE IF NOT EXISTS ` + config.TeamStatsTable + ` (
	team_name text NOT NULL,
	won_games_as_home_team integer NOT NULL,
	won_games_as_visitor_team integer NOT NULL,
	lost_games_as_home_team integer NOT NULL,
	lost_games_as_visitor_team integer NOT NULL
)`

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	if !cfg.HasDatabase() {
		return nil, fmt.Errorf("DATABASE_URL must be set for the postgres output")
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// The table must exist before the insert statement can be prepared.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		if _, err := conn.Exec(ctx, createTeamStatsTable); err != nil {
			return fmt.Errorf("create %s table: %w", config.TeamStatsTable, err)
		}
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		StmtInsertTeamStats: `INSERT INTO ` + config.TeamStatsTable + `
			(team_name, won_games_as_home_team, won_games_as_visitor_team, lost_games_as_home_team, lost_games_as_visitor_team)
			VALUES ($1, $2, $3, $4, $5)`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
