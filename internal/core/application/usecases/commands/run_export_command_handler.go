package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
)

// Export run outcomes reported to the ExportObserver.
const (
	ExportOutcomeOK       = "ok"
	ExportOutcomeEmpty    = "empty"
	ExportOutcomeDryRun   = "dry_run"
	ExportOutcomeFailed   = "failed"
	ExportOutcomeConflict = "conflict"
)

// ExportObserver receives the outcome of every export run.
type ExportObserver interface {
	ObserveExport(outcome string, orders int)
}

// RunExportResult describes a finished run. Count is the number of orders in the
// batch; for a dry run none of them was marked.
type RunExportResult struct {
	Count    int
	Batch    string
	Location string
	DryRun   bool
}

// RunExportCommandHandler moves placed orders into an export batch.
//
// The run holds row locks on the selected orders from selection to commit, and
// the final update re-checks that every order is still placed and unexported.
// Either all selected orders are exported together with one OK log entry, or
// none is and a failed run leaves one ERROR log entry.
type RunExportCommandHandler struct {
	uowFactory ExportUoWFactory
	writer     ports.BatchWriter
	clock      ports.Clock
	observer   ExportObserver
	logger     *slog.Logger
}

func NewRunExportCommandHandler(
	uowFactory ExportUoWFactory,
	writer ports.BatchWriter,
	clock ports.Clock,
	observer ExportObserver,
	logger *slog.Logger,
) RunExportCommandHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return RunExportCommandHandler{
		uowFactory: uowFactory,
		writer:     writer,
		clock:      clock,
		observer:   observer,
		logger:     logger.With("component", "export"),
	}
}

func (h RunExportCommandHandler) Handle(ctx context.Context, cmd RunExportCommand) (RunExportResult, error) {
	if err := cmd.Validate(); err != nil {
		return RunExportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return RunExportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllExportable(ctx, cmd.Since())
	if err != nil {
		return RunExportResult{}, err
	}
	if len(orders) == 0 {
		h.observe(ExportOutcomeEmpty, 0)
		h.logger.InfoContext(ctx, "no orders to export")
		return RunExportResult{DryRun: cmd.DryRun()}, nil
	}

	customers, err := uow.CustomerRepository().GetMany(ctx, customerIDs(orders))
	if err != nil {
		return RunExportResult{}, err
	}

	batcher := services.NewExportBatcher()
	records, err := batcher.Records(orders, customers)
	if err != nil {
		return RunExportResult{}, err
	}

	now := h.clock.Now()
	batch := export.BatchName(now)
	location, err := h.writer.Write(ctx, batch, records)
	if err != nil {
		_ = uow.Rollback(ctx)
		failure := fmt.Errorf("%w: %w", export.ErrExportWriteFailure, err)
		h.fail(ctx, now, ExportOutcomeFailed, failure)
		return RunExportResult{}, failure
	}

	result := RunExportResult{
		Count:    len(orders),
		Batch:    batch,
		Location: location,
		DryRun:   cmd.DryRun(),
	}
	if cmd.DryRun() {
		h.observe(ExportOutcomeDryRun, len(orders))
		h.logger.InfoContext(ctx, "dry run, orders not marked as exported",
			"orders", len(orders),
			"records", len(records),
			"location", location,
		)
		return result, nil
	}

	if err = h.commit(ctx, uow, orders, batcher, now, batch); err != nil {
		_ = uow.Rollback(ctx)
		h.discard(ctx, location)
		outcome := ExportOutcomeFailed
		if errors.Is(err, export.ErrExportConflict) {
			outcome = ExportOutcomeConflict
		}
		h.fail(ctx, now, outcome, err)
		return RunExportResult{}, err
	}

	h.observe(ExportOutcomeOK, len(orders))
	h.logger.InfoContext(ctx, "orders exported",
		"orders", len(orders),
		"records", len(records),
		"location", location,
	)
	return result, nil
}

// commit marks the selected orders, adds the OK log entry and commits the run.
func (h RunExportCommandHandler) commit(
	ctx context.Context,
	uow ExportUoW,
	orders []*order.Order,
	batcher services.ExportBatcher,
	now time.Time,
	batch string,
) error {
	if err := batcher.MarkExported(orders, now, batch); err != nil {
		return err
	}

	affected, err := uow.OrderRepository().MarkExported(ctx, orders)
	if err != nil {
		return err
	}
	if affected != int64(len(orders)) {
		return fmt.Errorf("%w: %d of %d selected orders were still exportable",
			export.ErrExportConflict, affected, len(orders))
	}

	entry, err := export.NewOKLog(kernel.NewUUID(), now, len(orders), batch)
	if err != nil {
		return err
	}
	if err = uow.ExportLogRepository().Add(ctx, entry); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

// fail stores the ERROR log in its own transaction; the run's transaction is
// already rolled back at this point.
func (h RunExportCommandHandler) fail(ctx context.Context, now time.Time, outcome string, cause error) {
	h.observe(outcome, 0)
	h.logger.ErrorContext(ctx, "export run failed", "error", cause)

	entry, err := export.NewErrorLog(kernel.NewUUID(), now, cause)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to build export log", "error", err)
		return
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to store export log", "error", err)
		return
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ExportLogRepository().Add(ctx, entry); err != nil {
		h.logger.ErrorContext(ctx, "failed to store export log", "error", err)
		return
	}
	if err = uow.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to store export log", "error", err)
	}
}

func (h RunExportCommandHandler) discard(ctx context.Context, location string) {
	if err := h.writer.Discard(ctx, location); err != nil {
		h.logger.WarnContext(ctx, "failed to discard export batch", "location", location, "error", err)
	}
}

func (h RunExportCommandHandler) observe(outcome string, orders int) {
	if h.observer != nil {
		h.observer.ObserveExport(outcome, orders)
	}
}

func customerIDs(orders []*order.Order) []int64 {
	seen := make(map[int64]struct{}, len(orders))
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		if _, ok := seen[o.CustomerID()]; ok {
			continue
		}
		seen[o.CustomerID()] = struct{}{}
		ids = append(ids, o.CustomerID())
	}
	return ids
}
