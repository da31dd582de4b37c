package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrReorderCommandIsNotConstructed = errors.New(
	"ReorderCommand must be created via NewReorderCommand constructor",
)

// ReorderCommand copies the lines of an earlier order into the customer's cart.
type ReorderCommand struct {
	customerID int64
	orderID    int64

	guard guard.ConstructorGuard
}

func NewReorderCommand(customerID, orderID int64) (ReorderCommand, error) {
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("order id", orderID),
	); err != nil {
		return ReorderCommand{}, err
	}

	return ReorderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c ReorderCommand) Validate() error {
	return c.guard.Validate(ErrReorderCommandIsNotConstructed)
}

func (c ReorderCommand) CustomerID() int64 { return c.customerID }
func (c ReorderCommand) OrderID() int64 { return c.orderID }
