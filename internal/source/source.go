// Package source loads the period table named by the configuration.
package source

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/zapponejosh/uoyweek/internal/academic"
	"github.com/zapponejosh/uoyweek/internal/config"
	"github.com/zapponejosh/uoyweek/internal/database"
	"github.com/zapponejosh/uoyweek/internal/tablefile"
)

// Loaded is a table together with the database it came from, if any.
type Loaded struct {
	Table *academic.Table
	DB    *database.DB // nil unless the source is database
	Name  string       // "builtin", the YAML path, or the database path
}

// Close releases the database, if one was opened.
func (l *Loaded) Close() error {
	if l.DB == nil {
		return nil
	}
	return l.DB.Close()
}

// Load builds the table from cfg.TableSource. When the source is the
// database the connection stays open (for health checks) and must be
// released with Close.
func Load(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Loaded, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var loaded *Loaded
	switch cfg.TableSource {
	case config.SourceBuiltin, "":
		loaded = &Loaded{Table: academic.York(), Name: config.SourceBuiltin}

	case config.SourceFile:
		table, err := tablefile.Load(cfg.TablePath)
		if err != nil {
			return nil, err
		}
		loaded = &Loaded{Table: table, Name: cfg.TablePath}

	case config.SourceDatabase:
		db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), logger)
		if err != nil {
			return nil, err
		}
		if _, err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		table, err := db.LoadTable(ctx)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("load table from %s: %w", cfg.DatabasePath, err)
		}
		loaded = &Loaded{Table: table, DB: db, Name: cfg.DatabasePath}

	default:
		return nil, fmt.Errorf("unknown table source %q", cfg.TableSource)
	}

	logger.Debug("period table loaded",
		slog.String("source", loaded.Name),
		slog.Int("periods", loaded.Table.Len()),
		slog.String("first", academic.FormatDate(loaded.Table.First().Start)),
		slog.String("last", academic.FormatDate(loaded.Table.Last().Start)),
	)

	return loaded, nil
}
