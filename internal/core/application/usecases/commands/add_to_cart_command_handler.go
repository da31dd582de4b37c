package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// AddToCartCommandHandler adds products to carts. Exceeding the product's
// max-per-order is rejected; the customer sees the limit instead of a silently
// smaller quantity.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
	clock      ports.Clock
}

func NewAddToCartCommandHandler(uowFactory CartUoWFactory, clock ports.Clock) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the id of the cart the product was added to.
func (h AddToCartCommandHandler) Handle(ctx context.Context, cmd AddToCartCommand) (int64, error) {
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

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	cart, created, err := getOrCreateCart(ctx, orderRepo, owner.ID(), h.clock.Now())
	if err != nil {
		return 0, err
	}

	if err = cart.AddOrUpdateLine(product, cmd.Quantity(), order.RejectOverCapacity); err != nil {
		return 0, err
	}
	if err = cart.RecomputeTotal(owner); err != nil {
		return 0, err
	}

	if err = saveOrder(ctx, orderRepo, cart, created); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return cart.ID(), nil
}
