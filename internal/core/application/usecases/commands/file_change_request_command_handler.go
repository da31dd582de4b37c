package commands

import (
	"context"
	"fmt"
	"log/slog"

	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
)

type FileChangeRequestCommandHandler struct {
	uowFactory ChangeRequestUoWFactory
	clock      ports.Clock
	notifier   notifier
}

func NewFileChangeRequestCommandHandler(
	uowFactory ChangeRequestUoWFactory,
	clock ports.Clock,
	sender ports.Notifier,
	logger *slog.Logger,
) FileChangeRequestCommandHandler {
	return FileChangeRequestCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   newNotifier(sender, logger),
	}
}

// Handle opens a pending request and returns its id. An order has at most one
// pending request; a second one fails with changerequest.ErrDuplicatePending.
func (h FileChangeRequestCommandHandler) Handle(ctx context.Context, cmd FileChangeRequestCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := getOwnedOrder(ctx, uow.OrderRepository().Get, owner.ID(), cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	requestRepo := uow.ChangeRequestRepository()
	pending, err := requestRepo.HasPending(ctx, o.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if pending {
		return kernel.UUID{}, fmt.Errorf("%w: order %d", changerequest.ErrDuplicatePending, o.ID())
	}

	request, err := changerequest.File(kernel.NewUUID(), o, cmd.Type(), cmd.Reason(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = requestRepo.Add(ctx, request); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	h.notifier.changeRequestFiled(ctx, owner, request)
	return request.ID(), nil
}
