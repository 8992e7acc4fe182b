package main

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/zapponejosh/uoyweek/internal/academic"
	"github.com/zapponejosh/uoyweek/internal/config"
	"github.com/zapponejosh/uoyweek/internal/source"
	"github.com/zapponejosh/uoyweek/internal/termdates"
)

// app carries what every command needs. The table is loaded on first use.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	now    func() time.Time
	loaded *source.Loaded

	// flags
	date  string
	short bool
	lower bool
}

func (a *app) table(ctx context.Context) (*academic.Table, error) {
	if a.loaded == nil {
		loaded, err := source.Load(ctx, a.cfg, a.log)
		if err != nil {
			return nil, fmt.Errorf("load table: %w", err)
		}
		a.loaded = loaded
	}
	return a.loaded.Table, nil
}

func (a *app) close() {
	if a.loaded != nil {
		if err := a.loaded.Close(); err != nil {
			a.log.Warn("failed to close table source", slog.Any("error", err))
		}
		a.loaded = nil
	}
}

// today is --date when given, otherwise the current date in the
// configured timezone.
func (a *app) today() (time.Time, error) {
	if a.date != "" {
		return academic.ParseDate(a.date)
	}
	return a.cfg.Today(a.now()), nil
}

// =============================================================================
// ROOT COMMAND - label for a date
// =============================================================================

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "uoyweek",
		Short: "Print the academic week label for a date",
		Long: `Prints which term, holiday or semester week a date falls in,
e.g. "Autumn/3/Tuesday" or "Christmas Holidays".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.runLabel,
	}

	root.PersistentFlags().StringVar(&a.date, "date", "", "use this date (YYYY-MM-DD) instead of today")
	root.Flags().BoolVarP(&a.short, "short", "s", false, "abbreviate the label")
	root.Flags().BoolVarP(&a.lower, "lower", "l", false, "lowercase the label")

	root.AddCommand(
		newTermDatesCmd(a),
		newPeriodsCmd(a),
		newCheckCmd(a),
	)
	return root
}

func (a *app) runLabel(cmd *cobra.Command, args []string) error {
	date, err := a.today()
	if err != nil {
		return err
	}
	table, err := a.table(cmd.Context())
	if err != nil {
		return err
	}

	label, err := table.Label(date, academic.FormatOptions{Short: a.short, Lower: a.lower})
	if err != nil {
		return err
	}
	a.log.Debug("labelled date",
		slog.String("date", academic.FormatDate(date)),
		slog.String("label", label))

	fmt.Fprintln(cmd.OutOrStdout(), label)
	return nil
}

// =============================================================================
// TERMDATES COMMAND - upcoming term starts
// =============================================================================

func newTermDatesCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "termdates",
		Short: "Print the next Autumn, Spring and Summer term starts",
		Long: `Prints the start dates of the current or next Autumn, Spring and
Summer terms as a chat-bot command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.today()
			if err != nil {
				return err
			}
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}

			report, err := termdates.Upcoming(table, date)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = a.cfg.TermDatesPrefix
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Command(prefix))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", termdates.DefaultPrefix, "command prefix (default from TERMDATES_PREFIX)")
	return cmd
}

// =============================================================================
// PERIODS COMMAND - list the table
// =============================================================================

func newPeriodsCmd(a *app) *cobra.Command {
	var kindName, name string

	cmd := &cobra.Command{
		Use:   "periods",
		Short: "List the periods of the table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind academic.Kind
			if kindName != "" {
				k, err := academic.ParseKind(kindName)
				if err != nil {
					return err
				}
				kind = k
			}
			date, err := a.today()
			if err != nil {
				return err
			}
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range table.Select(kind, name) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					academic.FormatDate(p.Start),
					p.Kind,
					p.Name,
					humanize.RelTime(p.Start, date, "ago", "from now"),
				)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "", "only periods of this kind (term, holiday, semester)")
	cmd.Flags().StringVar(&name, "name", "", "only periods with this name")
	return cmd
}

// =============================================================================
// CHECK COMMAND - validate the table
// =============================================================================

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configured period table",
		Long: `Loads the configured table and checks that every semester lists
enough week names to reach the next period.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table(cmd.Context())
			if err != nil {
				return err
			}
			if err := table.CheckCoverage(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d periods from %s to %s\n",
				table.Len(),
				academic.FormatDate(table.First().Start),
				academic.FormatDate(table.Last().Start),
			)
			return nil
		},
	}
}
