package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

type DeleteProductCommand struct {
	productID int64

	guard guard.ConstructorGuard
}

func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if err := validateID("product id", productID); err != nil {
		return DeleteProductCommand{}, err
	}
	return DeleteProductCommand{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

func (c DeleteProductCommand) ProductID() int64 { return c.productID }
