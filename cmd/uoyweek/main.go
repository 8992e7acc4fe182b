// Command uoyweek prints the academic week label for today.
//
// Usage:
//
//	uoyweek                      Autumn/3/Sunday
//	uoyweek -s                   Aut/3/Sun
//	uoyweek -l --date 2019-12-25 christmas holidays
//	uoyweek termdates            !termdates.set 2026-09-28 2027-01-11 2027-04-19
//	uoyweek periods --kind term  one line per term
//	uoyweek check                validates the configured table
//
// The table comes from TABLE_SOURCE (see internal/config). Logs go to
// stderr so stdout only carries the output.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/zapponejosh/uoyweek/internal/config"
	"github.com/zapponejosh/uoyweek/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "uoyweek: %v\n", err)
		os.Exit(1)
	}

	log := logger.SetupWriter(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{cfg: cfg, log: log, now: time.Now}
	defer a.close()

	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		log.Error("uoyweek failed", slog.Any("error", err))
		a.close()
		os.Exit(1)
	}
}
