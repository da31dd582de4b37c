package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/export"

	"github.com/robfig/cron/v3"
)

// DefaultExportSchedule runs the export every night at 04:00 shop time.
const DefaultExportSchedule = "0 0 4 * * *"

// ExportRunner runs one export.
type ExportRunner interface {
	Handle(ctx context.Context, cmd commands.RunExportCommand) (commands.RunExportResult, error)
}

// ExportJob runs the order export on a cron schedule with seconds. A run that
// is still going when the next one is due makes that one skip.
type ExportJob struct {
	runner   ExportRunner
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewExportJob creates the job. An empty schedule disables it. A nil loc
// means UTC and a nil logger means slog.Default().
func NewExportJob(runner ExportRunner, schedule string, loc *time.Location, logger *slog.Logger) *ExportJob {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportJob{
		runner:   runner,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "export_job"),
	}
}

func (j *ExportJob) Start() error {
	if j.schedule == "" {
		j.logger.InfoContext(context.Background(), "Export job disabled (no schedule)")
		return nil
	}

	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return fmt.Errorf("export schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Export job started", "schedule", j.schedule)
	return nil
}

// Run performs one scheduled export over all pending orders.
func (j *ExportJob) Run(ctx context.Context) {
	result, err := j.runner.Handle(ctx, commands.NewRunExportCommand(nil, false))
	switch {
	case errors.Is(err, export.ErrExportConflict):
		// Picked up again by the next run.
		j.logger.WarnContext(ctx, "Export job aborted by a concurrent change", "error", err)
	case err != nil:
		j.logger.ErrorContext(ctx, "Export job failed", "error", err)
	case result.Count > 0:
		j.logger.InfoContext(ctx, "Export job finished", "orders", result.Count, "batch", result.Batch)
	}
}

// Stop waits for a running export to finish.
func (j *ExportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Export job stopped")
}
