package ports

import (
	"context"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/customer"
)

type ProductRepository interface {
	NextID(ctx context.Context) (int64, error)
	Add(ctx context.Context, product *catalog.Product) error
	Update(ctx context.Context, product *catalog.Product) error
	Get(ctx context.Context, id int64) (*catalog.Product, error)
	GetBySKU(ctx context.Context, sku string) (*catalog.Product, error)

	// Delete fails with catalog.ErrProductInUse while order lines reference the product.
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	NextID(ctx context.Context) (int64, error)
	Add(ctx context.Context, c *customer.Customer) error
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// GetMany loads customers by id. Missing ids are absent from the result.
	GetMany(ctx context.Context, ids []int64) (map[int64]*customer.Customer, error)
}
