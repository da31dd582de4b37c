package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand replaces the editable fields of a product. The new price
// applies to lines created afterwards only.
type UpdateProductCommand struct {
	productID   int64
	name        string
	description string
	price       kernel.Money
	available   bool
	maxPerOrder int

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(
	productID int64,
	name, description string,
	priceCents int64,
	available bool,
	maxPerOrder int,
) (UpdateProductCommand, error) {
	price, priceErr := kernel.NewMoney(priceCents)
	if err := errors.Join(validateID("product id", productID), priceErr); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		price:       price,
		available:   available,
		maxPerOrder: maxPerOrder,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) ProductID() int64 { return c.productID }
func (c UpdateProductCommand) Name() string { return c.name }
func (c UpdateProductCommand) Description() string { return c.description }
func (c UpdateProductCommand) Price() kernel.Money { return c.price }
func (c UpdateProductCommand) Available() bool { return c.available }
func (c UpdateProductCommand) MaxPerOrder() int { return c.maxPerOrder }
