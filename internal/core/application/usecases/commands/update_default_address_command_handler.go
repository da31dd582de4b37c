package commands

import (
	"context"
)

type UpdateDefaultAddressCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateDefaultAddressCommandHandler(uowFactory CustomerUoWFactory) UpdateDefaultAddressCommandHandler {
	return UpdateDefaultAddressCommandHandler{uowFactory: uowFactory}
}

func (h UpdateDefaultAddressCommandHandler) Handle(ctx context.Context, cmd UpdateDefaultAddressCommand) error {
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

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	c.UpdateDefaultAddress(cmd.Address())

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
