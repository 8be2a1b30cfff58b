package persist

import (
	"context"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/courtside/hoopstats/internal/config"
	"github.com/courtside/hoopstats/internal/stats"
)

// teamStatRow mirrors the team_stats table. It has no primary key so repeated
// runs accumulate duplicate rows.
type teamStatRow struct {
	TeamName               string `gorm:"column:team_name;type:text;not null"`
	WonGamesAsHomeTeam     int    `gorm:"column:won_games_as_home_team;type:integer;not null"`
	WonGamesAsVisitorTeam  int    `gorm:"column:won_games_as_visitor_team;type:integer;not null"`
	LostGamesAsHomeTeam    int    `gorm:"column:lost_games_as_home_team;type:integer;not null"`
	LostGamesAsVisitorTeam int    `gorm:"column:lost_games_as_visitor_team;type:integer;not null"`
}

func (teamStatRow) TableName() string { return config.TeamStatsTable }

// SQLite is a local single-file store.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (or creates) the database at path and makes sure the
// team_stats table exists. Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*SQLite, error) {
	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases from splitting across connections.
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := gormDB.AutoMigrate(&teamStatRow{}); err != nil {
		closeGorm(gormDB)
		return nil, fmt.Errorf("create %s table: %w", config.TeamStatsTable, err)
	}
	return &SQLite{db: gormDB}, nil
}

// AppendTeamStats inserts every tally in a single transaction.
func (s *SQLite) AppendTeamStats(ctx context.Context, tallies []stats.TeamSeasonTally) WriteResult {
	var result WriteResult
	if len(tallies) == 0 {
		return result
	}

	rows := make([]teamStatRow, 0, len(tallies))
	for _, t := range tallies {
		rows = append(rows, teamStatRow{
			TeamName:               t.TeamName,
			WonGamesAsHomeTeam:     t.WonAsHome,
			WonGamesAsVisitorTeam:  t.WonAsVisitor,
			LostGamesAsHomeTeam:    t.LostAsHome,
			LostGamesAsVisitorTeam: t.LostAsVisitor,
		})
	}

	tx := s.db.WithContext(ctx).Create(&rows)
	if tx.Error != nil {
		result.AddErrorf("insert team stats: %v", tx.Error)
		return result
	}
	result.RowsInserted = int(tx.RowsAffected)
	return result
}

// CountRows returns the number of rows currently in team_stats.
func (s *SQLite) CountRows(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&teamStatRow{}).Count(&n).Error
	return n, err
}

// Close releases the underlying connection.
func (s *SQLite) Close() error {
	return closeGorm(s.db)
}

func closeGorm(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
