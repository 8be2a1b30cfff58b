package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/courtside/hoopstats/internal/config"
	"github.com/courtside/hoopstats/internal/persist"
	"github.com/courtside/hoopstats/internal/stats"
)

// StoreOpener acquires a store for one write. release is always called, even
// when the write fails.
type StoreOpener func(ctx context.Context) (store persist.TeamStatsStore, release func(), err error)

// Emitter sends team tallies to the selected format.
type Emitter struct {
	Out          io.Writer
	Dir          string
	OpenSQLite   StoreOpener
	OpenPostgres StoreOpener
	Logger       *slog.Logger
}

// NewEmitter builds an emitter writing files under cfg.OutputDir and stores
// opened with the given openers.
func NewEmitter(cfg *config.Config, openSQLite, openPostgres StoreOpener, logger *slog.Logger) *Emitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Emitter{
		Out:          os.Stdout,
		Dir:          cfg.OutputDir,
		OpenSQLite:   openSQLite,
		OpenPostgres: openPostgres,
		Logger:       logger,
	}
}

// SQLiteOpener opens the local database at path.
func SQLiteOpener(path string) StoreOpener {
	return func(ctx context.Context) (persist.TeamStatsStore, func(), error) {
		store, err := persist.OpenSQLite(path)
		if err != nil {
			return nil, func() {}, err
		}
		return store, func() { _ = store.Close() }, nil
	}
}

// TeamStats writes tallies in format. File and console failures are returned;
// store failures are logged and swallowed so a broken database never fails
// the run.
func (e *Emitter) TeamStats(ctx context.Context, format Format, tallies []stats.TeamSeasonTally) error {
	switch format {
	case FormatStdout:
		return WriteTeamStatsText(e.Out, tallies)
	case FormatCSV:
		path, err := writeFile(e.Dir, config.TeamStatsCSVFile, func(w io.Writer) error {
			return WriteTeamStatsCSV(w, tallies)
		})
		if err != nil {
			return err
		}
		e.Logger.Info("CSV file created", "path", path)
		return nil
	case FormatJSON:
		path, err := writeFile(e.Dir, config.TeamStatsJSONFile, func(w io.Writer) error {
			return WriteTeamStatsJSON(w, tallies)
		})
		if err != nil {
			return err
		}
		e.Logger.Info("JSON file created", "path", path)
		return nil
	case FormatSQLite:
		e.persist(ctx, string(format), e.OpenSQLite, tallies)
		return nil
	case FormatPostgres:
		e.persist(ctx, string(format), e.OpenPostgres, tallies)
		return nil
	default:
		return fmt.Errorf("unknown output %q", format)
	}
}

func (e *Emitter) persist(ctx context.Context, name string, open StoreOpener, tallies []stats.TeamSeasonTally) {
	if open == nil {
		e.Logger.Error("store not configured", "store", name)
		return
	}

	store, release, err := open(ctx)
	if release != nil {
		defer func() {
			release()
			e.Logger.Info("Store connection closed", "store", name)
		}()
	}
	if err != nil {
		e.Logger.Error("store unavailable", "store", name, "error", err)
		return
	}

	result := store.AppendTeamStats(ctx, tallies)
	for _, msg := range result.Errors {
		e.Logger.Error("store write error", "store", name, "error", msg)
	}
	e.Logger.Info("Records inserted into "+config.TeamStatsTable, "store", name, "summary", result.Summary())
}
