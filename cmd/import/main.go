// Command import loads a period table into the SQLite database.
//
// Usage:
//
//	go run ./cmd/import -table tables/york.yaml -db data/uoyweek.db
//
// Without -table the built-in York table is imported. This tool:
// 1. Reads and validates the table
// 2. Creates/opens the SQLite database and runs migrations
// 3. Replaces all stored periods in a single transaction
//
// Running it again replaces the stored table, so it is safe to repeat.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/zapponejosh/uoyweek/internal/academic"
	"github.com/zapponejosh/uoyweek/internal/config"
	"github.com/zapponejosh/uoyweek/internal/database"
	"github.com/zapponejosh/uoyweek/internal/tablefile"
)

func main() {
	// Parse command line flags
	tablePath := flag.String("table", "", "Path to YAML table file (default: built-in York table)")
	dbPath := flag.String("db", "data/uoyweek.db", "Path to SQLite database")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	// Setup logger
	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Run import
	if err := run(*tablePath, *dbPath, logger); err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import complete")
}

func run(tablePath, dbPath string, logger *slog.Logger) error {
	ctx := context.Background()
	startTime := time.Now()

	// =========================================================================
	// Step 1: Read and validate the table
	// =========================================================================
	table, name, err := readTable(tablePath)
	if err != nil {
		return err
	}
	if err := table.CheckCoverage(); err != nil {
		return fmt.Errorf("check %s: %w", name, err)
	}

	logger.Info("table read",
		slog.String("source", name),
		slog.Int("periods", table.Len()),
		slog.String("first", academic.FormatDate(table.First().Start)),
		slog.String("last", academic.FormatDate(table.Last().Start)),
	)

	// =========================================================================
	// Step 2: Open database and run migrations
	// =========================================================================
	logger.Info("opening database", slog.String("path", dbPath))

	db, err := database.Open(database.DefaultConfig(dbPath), logger)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("migrations complete", slog.Int("applied", migrated))

	// =========================================================================
	// Step 3: Replace stored periods
	// =========================================================================
	if err := db.ReplacePeriods(ctx, name, table); err != nil {
		return fmt.Errorf("import periods: %w", err)
	}

	// =========================================================================
	// Step 4: Verify import
	// =========================================================================
	count, err := db.CountPeriods(ctx)
	if err != nil {
		return fmt.Errorf("count periods: %w", err)
	}
	if count != table.Len() {
		return fmt.Errorf("stored %d periods, expected %d", count, table.Len())
	}

	elapsed := time.Since(startTime)
	logger.Info("import verified",
		slog.Int("periods", count),
		slog.Duration("elapsed", elapsed),
	)

	// Print summary
	fmt.Println()
	fmt.Println("=== Import Summary ===")
	fmt.Printf("Source:              %s\n", name)
	for _, kind := range academic.Kinds() {
		fmt.Printf("%-20s %d\n", kind.String()+"s:", len(table.Select(kind, "")))
	}
	fmt.Printf("Time elapsed:        %v\n", elapsed.Round(time.Millisecond))

	return nil
}

// readTable loads the YAML table at path, or the built-in table when path
// is empty.
func readTable(path string) (*academic.Table, string, error) {
	if path == "" {
		return academic.York(), config.SourceBuiltin, nil
	}
	table, err := tablefile.Load(path)
	if err != nil {
		return nil, "", err
	}
	return table, path, nil
}
