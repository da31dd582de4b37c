// Package customer models the customer profile the ordering core consumes:
// identity for export records, the flat delivery fee and the default address.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the account that owns carts and orders.
type Customer struct {
	id             int64
	email          string
	firstName      string
	lastName       string
	customerNumber string
	deliveryFee    kernel.Money
	defaultAddress kernel.Address

	isConstructed bool
}

// NewCustomer creates a customer with no delivery fee and no default address.
func NewCustomer(id int64, email, firstName, lastName string) (*Customer, error) {
	c := &Customer{
		deliveryFee:   kernel.Zero(),
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}
	c.firstName = strings.TrimSpace(firstName)
	c.lastName = strings.TrimSpace(lastName)

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(
	id int64,
	email, firstName, lastName, customerNumber string,
	deliveryFee kernel.Money,
	defaultAddress kernel.Address,
) (*Customer, error) {
	c, err := NewCustomer(id, email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if err = c.ChangeDeliveryFee(deliveryFee); err != nil {
		return nil, err
	}
	c.customerNumber = strings.TrimSpace(customerNumber)
	c.defaultAddress = defaultAddress
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() int64 { return c.id }
func (c *Customer) Email() string { return c.email }
func (c *Customer) FirstName() string { return c.firstName }
func (c *Customer) LastName() string { return c.lastName }
func (c *Customer) CustomerNumber() string { return c.customerNumber }

// DeliveryFee is the flat fee charged on every delivery order of this customer.
func (c *Customer) DeliveryFee() kernel.Money { return c.deliveryFee }

func (c *Customer) DefaultAddress() kernel.Address { return c.defaultAddress }

// FullName joins first and last name, falling back to the email.
func (c *Customer) FullName() string {
	name := strings.TrimSpace(c.firstName + " " + c.lastName)
	if name == "" {
		return c.email
	}
	return name
}

// ChangeDeliveryFee is a staff operation; customers cannot set their own fee.
func (c *Customer) ChangeDeliveryFee(fee kernel.Money) error {
	if err := fee.Validate(); err != nil {
		return err
	}
	c.deliveryFee = fee
	return nil
}

func (c *Customer) AssignCustomerNumber(number string) {
	c.customerNumber = strings.TrimSpace(number)
}

func (c *Customer) UpdateDefaultAddress(address kernel.Address) {
	c.defaultAddress = address
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}
