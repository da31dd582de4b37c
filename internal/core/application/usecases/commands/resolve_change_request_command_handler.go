package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/ports"
)

// ResolveChangeRequestCommandHandler records the staff decision and tells the
// customer. The order is left as it is; staff apply an approved change through
// the regular order operations.
type ResolveChangeRequestCommandHandler struct {
	uowFactory ChangeRequestUoWFactory
	clock      ports.Clock
	notifier   notifier
}

func NewResolveChangeRequestCommandHandler(
	uowFactory ChangeRequestUoWFactory,
	clock ports.Clock,
	sender ports.Notifier,
	logger *slog.Logger,
) ResolveChangeRequestCommandHandler {
	return ResolveChangeRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   newNotifier(sender, logger),
	}
}

func (h ResolveChangeRequestCommandHandler) Handle(ctx context.Context, cmd ResolveChangeRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestRepo := uow.ChangeRequestRepository()
	request, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}

	if err = request.Resolve(cmd.Approve(), cmd.Notes(), h.clock.Now()); err != nil {
		return err
	}

	owner, err := uow.CustomerRepository().Get(ctx, request.CustomerID())
	if err != nil {
		return err
	}

	if err = requestRepo.Update(ctx, request); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.changeRequestResolved(ctx, owner, request)
	return nil
}
