package commands

import (
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the customer's cart.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, order.Delivery, &desired, kernel.Address{})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	customerID   int64
	deliveryType order.DeliveryType
	desiredTime  *time.Time
	address      kernel.Address

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates the checkout command. An empty address means the
// customer's default address for delivery orders.
func NewPlaceOrderCommand(
	customerID int64,
	deliveryType order.DeliveryType,
	desiredTime *time.Time,
	address kernel.Address,
) (PlaceOrderCommand, error) {
	if err := errors.Join(
		validateID("customer id", customerID),
		deliveryType.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		customerID:   customerID,
		deliveryType: deliveryType,
		desiredTime:  desiredTime,
		address:      address,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) CustomerID() int64 { return c.customerID }
func (c PlaceOrderCommand) DeliveryType() order.DeliveryType { return c.deliveryType }
func (c PlaceOrderCommand) DesiredTime() *time.Time { return c.desiredTime }
func (c PlaceOrderCommand) Address() kernel.Address { return c.address }
