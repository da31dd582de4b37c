package commands

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// PlaceOrderCommandHandler submits the customer's cart and sends the order
// confirmation once the order is committed.
type PlaceOrderCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
	notifier   notifier
}

func NewPlaceOrderCommandHandler(
	uowFactory CartUoWFactory,
	clock ports.Clock,
	sender ports.Notifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		notifier:   newNotifier(sender, logger),
	}
}

// Handle returns the id of the placed order.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	cart, err := orderRepo.GetDraftByCustomer(ctx, owner.ID())
	if err != nil {
		return 0, err
	}

	address := cmd.Address()
	if cmd.DeliveryType() == order.Delivery {
		address = address.Or(owner.DefaultAddress())
		if address.IsEmpty() {
			return 0, errs.NewValueIsRequiredError("delivery address")
		}
	}
	if err = cart.SetDeliveryDetails(cmd.DeliveryType(), cmd.DesiredTime(), address); err != nil {
		return 0, err
	}

	now := h.clock.Now()
	if err = cart.Place(owner, now); err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, cart); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	h.notifier.orderPlaced(ctx, owner, cart, cart.EditCutoff(now.Location()))
	return cart.ID(), nil
}
