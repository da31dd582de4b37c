package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand is the customer's self-service cancellation.
type CancelOrderCommand struct {
	customerID int64
	orderID    int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(customerID, orderID int64) (CancelOrderCommand, error) {
	if err := errors.Join(
		validateID("customer id", customerID),
		validateID("order id", orderID),
	); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		customerID: customerID,
		orderID:    orderID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) CustomerID() int64 { return c.customerID }
func (c CancelOrderCommand) OrderID() int64 { return c.orderID }
