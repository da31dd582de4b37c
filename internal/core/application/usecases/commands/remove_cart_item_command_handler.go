package commands

import (
	"context"
)

type RemoveCartItemCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewRemoveCartItemCommandHandler(uowFactory CartUoWFactory) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{uowFactory: uowFactory}
}

// Handle removes the line from the customer's cart. Removing a product that is
// not in the cart succeeds without change.
func (h RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
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

	if err = cart.RemoveLine(cmd.ProductID()); err != nil {
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
