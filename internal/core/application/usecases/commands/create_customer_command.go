package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

type CreateCustomerCommand struct {
	email          string
	firstName      string
	lastName       string
	customerNumber string
	deliveryFee    kernel.Money
	address        kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	email, firstName, lastName, customerNumber string,
	deliveryFeeCents int64,
	address kernel.Address,
) (CreateCustomerCommand, error) {
	fee, feeErr := kernel.NewMoney(deliveryFeeCents)

	var emailErr error
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if err := errors.Join(emailErr, feeErr); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		email:          email,
		firstName:      firstName,
		lastName:       lastName,
		customerNumber: strings.TrimSpace(customerNumber),
		deliveryFee:    fee,
		address:        address,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Email() string { return c.email }
func (c CreateCustomerCommand) FirstName() string { return c.firstName }
func (c CreateCustomerCommand) LastName() string { return c.lastName }
func (c CreateCustomerCommand) CustomerNumber() string { return c.customerNumber }
func (c CreateCustomerCommand) DeliveryFee() kernel.Money { return c.deliveryFee }
func (c CreateCustomerCommand) Address() kernel.Address { return c.address }
