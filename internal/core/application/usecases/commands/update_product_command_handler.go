package commands

import (
	"context"
	"errors"
)

type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{uowFactory: uowFactory}
}

func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	repo := uow.ProductRepository()
	product, err := repo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = errors.Join(
		product.Describe(cmd.Name(), cmd.Description()),
		product.ChangePrice(cmd.Price()),
		product.ChangeMaxPerOrder(cmd.MaxPerOrder()),
	); err != nil {
		return err
	}
	product.SetAvailable(cmd.Available())

	if err = repo.Update(ctx, product); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
