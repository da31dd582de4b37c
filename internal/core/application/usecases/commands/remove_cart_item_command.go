package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrRemoveCartItemCommandIsNotConstructed = errors.New(
	"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
)

type RemoveCartItemCommand struct {
	customerID int64
	productID  int64

	guard guard.ConstructorGuard
}

func NewRemoveCartItemCommand(customerID, productID int64) (RemoveCartItemCommand, error) {
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("product id", productID),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return RemoveCartItemCommand{
		customerID: customerID,
		productID:  productID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

func (c RemoveCartItemCommand) CustomerID() int64 { return c.customerID }
func (c RemoveCartItemCommand) ProductID() int64 { return c.productID }
