package commands

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrAddToCartCommandIsNotConstructed = errors.New(
	"AddToCartCommand must be created via NewAddToCartCommand constructor",
)

// AddToCartCommand adds quantity units of a product to the customer's cart,
// creating the cart on first use.
type AddToCartCommand struct {
	customerID int64
	productID  int64
	quantity   int

	guard guard.ConstructorGuard
}

func NewAddToCartCommand(customerID, productID int64, quantity int) (AddToCartCommand, error) {
	cmd := AddToCartCommand{
		customerID: customerID,
		productID:  productID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}

	var quantityErr error
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "max per order")
	}
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("product id", productID),
		quantityErr,
	); err != nil {
		return AddToCartCommand{}, err
	}

	return cmd, nil
}

func (c AddToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddToCartCommandIsNotConstructed)
}

func (c AddToCartCommand) CustomerID() int64 { return c.customerID }
func (c AddToCartCommand) ProductID() int64 { return c.productID }
func (c AddToCartCommand) Quantity() int { return c.quantity }
