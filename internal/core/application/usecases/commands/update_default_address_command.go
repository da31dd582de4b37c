package commands

import (
	"errors"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/guard"
)

var ErrUpdateDefaultAddressCommandIsNotConstructed = errors.New(
	"UpdateDefaultAddressCommand must be created via NewUpdateDefaultAddressCommand constructor",
)

// UpdateDefaultAddressCommand changes the address used for delivery orders that
// do not name their own.
type UpdateDefaultAddressCommand struct {
	customerID int64
	address    kernel.Address

	guard guard.ConstructorGuard
}

func NewUpdateDefaultAddressCommand(customerID int64, address kernel.Address) (UpdateDefaultAddressCommand, error) {
	if err := validateID("customer id", customerID); err != nil {
		return UpdateDefaultAddressCommand{}, err
	}
	return UpdateDefaultAddressCommand{
		customerID: customerID,
		address:    address,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDefaultAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDefaultAddressCommandIsNotConstructed)
}

func (c UpdateDefaultAddressCommand) CustomerID() int64 { return c.customerID }
func (c UpdateDefaultAddressCommand) Address() kernel.Address { return c.address }
