package commands

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
)

type CreateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateProductCommandHandler(uowFactory CatalogUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{uowFactory: uowFactory}
}

// Handle returns the new product's id. SKUs are unique.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (int64, error) {
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

	repo := uow.ProductRepository()
	id, err := repo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	maxPerOrder := cmd.MaxPerOrder()
	if maxPerOrder == 0 {
		maxPerOrder = catalog.DefaultMaxPerOrder
	}
	product, err := catalog.NewProduct(id, cmd.SKU(), cmd.Name(), cmd.Description(), cmd.Price(), maxPerOrder)
	if err != nil {
		return 0, err
	}

	if err = repo.Add(ctx, product); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return id, nil
}
