package commands

import (
	"context"
)

// DeleteProductCommandHandler removes a product from the catalog. Products that
// appear on any order line cannot be deleted (catalog.ErrProductInUse); mark them
// unavailable instead.
type DeleteProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteProductCommandHandler(uowFactory CatalogUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{uowFactory: uowFactory}
}

func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
