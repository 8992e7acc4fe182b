package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/uoyweek/internal/academic"
)

// Import describes one call to ReplacePeriods.
type Import struct {
	ID          int64
	Source      string
	PeriodCount int
	ImportedAt  time.Time
}

// ReplacePeriods swaps the stored table for table in a single transaction
// and records the import under source (a file path or "builtin").
func (db *DB) ReplacePeriods(ctx context.Context, source string, table *academic.Table) error {
	err := db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM periods"); err != nil {
			return fmt.Errorf("clear periods: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO periods (kind, name, start_date, weeks) VALUES (?, ?, ?, ?)")
		if err != nil {
			return fmt.Errorf("prepare period insert: %w", err)
		}
		defer stmt.Close()

		for p := range table.All() {
			weeks, err := json.Marshal(nonNil(p.Weeks()))
			if err != nil {
				return fmt.Errorf("marshal weeks for %s: %w", p, err)
			}
			if _, err := stmt.ExecContext(ctx,
				p.Kind.String(), p.Name, academic.FormatDate(p.Start), string(weeks),
			); err != nil {
				return fmt.Errorf("insert %s: %w", p, err)
			}
		}

		if _, err := tx.ExecContext(ctx,
			"INSERT INTO table_imports (source, period_count) VALUES (?, ?)",
			source, table.Len(),
		); err != nil {
			return fmt.Errorf("record import: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	db.logger.Info("period table replaced",
		slog.String("source", source),
		slog.Int("periods", table.Len()),
	)
	return nil
}

// ListPeriods returns the stored periods in start order.
func (db *DB) ListPeriods(ctx context.Context) ([]academic.Period, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT kind, name, start_date, weeks
		FROM periods
		ORDER BY start_date ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query periods: %w", err)
	}
	defer rows.Close()

	var periods []academic.Period
	for rows.Next() {
		var kindStr, name, startStr, weeksJSON string
		if err := rows.Scan(&kindStr, &name, &startStr, &weeksJSON); err != nil {
			return nil, fmt.Errorf("scan period row: %w", err)
		}

		p, err := periodFromRow(kindStr, name, startStr, weeksJSON)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate period rows: %w", err)
	}

	return periods, nil
}

// LoadTable builds a Table from the stored periods. An empty store yields
// a *academic.ConfigurationError.
func (db *DB) LoadTable(ctx context.Context) (*academic.Table, error) {
	periods, err := db.ListPeriods(ctx)
	if err != nil {
		return nil, err
	}
	return academic.NewTable(periods...)
}

// CountPeriods returns the number of stored periods.
func (db *DB) CountPeriods(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM periods").Scan(&n); err != nil {
		return 0, fmt.Errorf("count periods: %w", err)
	}
	return n, nil
}

// LastImport returns the most recent import, or ErrNotFound if the table
// has never been imported.
func (db *DB) LastImport(ctx context.Context) (*Import, error) {
	var imp Import
	var importedAt string

	err := db.QueryRowContext(ctx, `
		SELECT id, source, period_count, imported_at
		FROM table_imports
		ORDER BY id DESC
		LIMIT 1
	`).Scan(&imp.ID, &imp.Source, &imp.PeriodCount, &importedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query last import: %w", err)
	}

	// datetime('now') is UTC without a zone suffix
	if t, err := time.Parse("2006-01-02 15:04:05", importedAt); err == nil {
		imp.ImportedAt = t
	}

	return &imp, nil
}

func periodFromRow(kindStr, name, startStr, weeksJSON string) (academic.Period, error) {
	kind, err := academic.ParseKind(kindStr)
	if err != nil {
		return academic.Period{}, fmt.Errorf("period row %s: %w", startStr, err)
	}
	start, err := academic.ParseDate(startStr)
	if err != nil {
		return academic.Period{}, fmt.Errorf("period row: %w", err)
	}

	switch kind {
	case academic.KindTerm:
		return academic.NewTerm(start, name), nil
	case academic.KindHoliday:
		return academic.NewHoliday(start, name), nil
	}

	var weeks []string
	if err := json.Unmarshal([]byte(weeksJSON), &weeks); err != nil {
		return academic.Period{}, fmt.Errorf("unmarshal weeks for semester %s: %w", startStr, err)
	}
	if len(weeks) == 0 {
		return academic.Period{}, &academic.ConfigurationError{
			Reason: fmt.Sprintf("stored semester starting %s has no week names", startStr),
		}
	}
	return academic.NewSemester(start, weeks...), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
