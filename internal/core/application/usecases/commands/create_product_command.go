package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

type CreateProductCommand struct {
	sku         string
	name        string
	description string
	price       kernel.Money
	maxPerOrder int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the new product's data. maxPerOrder of zero
// selects catalog.DefaultMaxPerOrder.
func NewCreateProductCommand(
	sku, name, description string,
	priceCents int64,
	maxPerOrder int,
) (CreateProductCommand, error) {
	price, priceErr := kernel.NewMoney(priceCents)

	var skuErr, nameErr error
	if strings.TrimSpace(sku) == "" {
		skuErr = errs.NewValueIsRequiredError("sku")
	}
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(skuErr, nameErr, priceErr); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		sku:         strings.TrimSpace(sku),
		name:        strings.TrimSpace(name),
		description: description,
		price:       price,
		maxPerOrder: maxPerOrder,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) SKU() string { return c.sku }
func (c CreateProductCommand) Name() string { return c.name }
func (c CreateProductCommand) Description() string { return c.description }
func (c CreateProductCommand) Price() kernel.Money { return c.price }
func (c CreateProductCommand) MaxPerOrder() int { return c.maxPerOrder }
