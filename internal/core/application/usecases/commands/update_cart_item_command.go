package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrUpdateCartItemCommandIsNotConstructed = errors.New(
	"UpdateCartItemCommand must be created via NewUpdateCartItemCommand constructor",
)

// UpdateCartItemCommand sets the quantity of a cart line. Zero or less removes the line.
type UpdateCartItemCommand struct {
	customerID int64
	productID  int64
	quantity   int

	guard guard.ConstructorGuard
}

func NewUpdateCartItemCommand(customerID, productID int64, quantity int) (UpdateCartItemCommand, error) {
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("product id", productID),
	); err != nil {
		return UpdateCartItemCommand{}, err
	}

	return UpdateCartItemCommand{
		customerID: customerID,
		productID:  productID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCartItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCartItemCommandIsNotConstructed)
}

func (c UpdateCartItemCommand) CustomerID() int64 { return c.customerID }
func (c UpdateCartItemCommand) ProductID() int64 { return c.productID }
func (c UpdateCartItemCommand) Quantity() int { return c.quantity }
