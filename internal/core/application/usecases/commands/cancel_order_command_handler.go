package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order on behalf of its customer. A placed
// order past its edit cutoff fails with order.ErrCutoffPassed; the customer has
// to file a change request instead.
type CancelOrderCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
	notifier   notifier
}

func NewCancelOrderCommandHandler(
	uowFactory CartUoWFactory,
	clock ports.Clock,
	sender ports.Notifier,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   newNotifier(sender, logger),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := getOwnedOrder(ctx, orderRepo.GetForUpdate, owner.ID(), cmd.OrderID())
	if err != nil {
		return err
	}

	wasPlaced := o.Status() == order.Placed
	if wasPlaced && !o.IsCancellable(h.clock.Now()) {
		return order.ErrCutoffPassed
	}
	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if wasPlaced {
		h.notifier.orderCancelled(ctx, owner, o)
	}
	return nil
}
