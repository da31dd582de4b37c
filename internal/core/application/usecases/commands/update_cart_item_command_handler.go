package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// UpdateCartItemCommandHandler overwrites line quantities. Quantities above the
// product's max-per-order are clamped to the maximum.
type UpdateCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewUpdateCartItemCommandHandler(uowFactory CartUoWFactory) UpdateCartItemCommandHandler {
	return UpdateCartItemCommandHandler{uowFactory: uowFactory}
}

func (h UpdateCartItemCommandHandler) Handle(ctx context.Context, cmd UpdateCartItemCommand) error {
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
	cart, err := orderRepo.GetDraftByCustomer(ctx, owner.ID())
	if err != nil {
		return err
	}

	product, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = cart.SetLineQuantity(product, cmd.Quantity(), order.ClampToCapacity); err != nil {
		return err
	}
	if err = cart.RecomputeTotal(owner); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, cart); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
