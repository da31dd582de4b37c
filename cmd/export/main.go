// Command export runs the order export once, outside the schedule.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"bakery/cmd"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/pkg/clock"

	"github.com/labstack/gommon/log"
)

func main() {
	sinceFlag := flag.String("since", "",
		"only export orders placed at or after this time: 2024-03-05, 2024-03-05T10:00:00 (shop time) or RFC 3339")
	dryRun := flag.Bool("dry-run", false, "write the batch file but leave orders untouched")
	flag.Parse()

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	shopClock, err := clock.Load(config.ShopTimezone)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var since *time.Time
	if *sinceFlag != "" {
		t, err := parseSince(*sinceFlag, shopClock.Location())
		if err != nil {
			log.Fatalf("-since: %v", err)
		}
		since = &t
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gormDB, err := postgres.Open(config.DSN())
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err = postgres.Migrate(ctx, gormDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	app, err := cmd.NewCompositionRoot(config, gormDB, logger)
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}

	result, err := app.CreateRunExportCommandHandler().Handle(ctx, commands.NewRunExportCommand(since, *dryRun))
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	switch {
	case result.Count == 0:
		fmt.Println("no orders to export")
	case result.DryRun:
		fmt.Printf("dry run: %d orders would be exported to %s\n", result.Count, result.Batch)
	default:
		fmt.Printf("exported %d orders to %s\n", result.Count, result.Batch)
	}
}
