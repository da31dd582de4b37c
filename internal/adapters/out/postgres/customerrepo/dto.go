// Package customerrepo persists customer profiles.
package customerrepo

import (
	"time"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
)

// CustomerDTO is the row of the customers table. The default address is stored
// inline with the address_ prefix.
type CustomerDTO struct {
	ID               int64      `gorm:"primaryKey"`
	Email            string     `gorm:"type:varchar(254);not null;uniqueIndex:idx_customers_email"`
	FirstName        string     `gorm:"type:varchar(100);not null;default:''"`
	LastName         string     `gorm:"type:varchar(100);not null;default:''"`
	CustomerNumber   string     `gorm:"type:varchar(32);not null;default:''"`
	DeliveryFeeCents int64      `gorm:"not null;default:0;check:chk_customers_delivery_fee,delivery_fee_cents >= 0"`
	Address          AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is an address embedded into its owner's table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null;default:''"`
	City       string `gorm:"type:varchar(100);not null;default:''"`
	PostalCode string `gorm:"type:varchar(16);not null;default:''"`
	Phone      string `gorm:"type:varchar(32);not null;default:''"`
	Notes      string `gorm:"type:text;not null;default:''"`
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Phone:      a.Phone(),
		Notes:      a.Notes(),
	}
}

func (a AddressDTO) toDomain() kernel.Address {
	return kernel.NewAddress(a.Street, a.City, a.PostalCode, a.Phone, a.Notes)
}

func fromDomain(c *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:               c.ID(),
		Email:            c.Email(),
		FirstName:        c.FirstName(),
		LastName:         c.LastName(),
		CustomerNumber:   c.CustomerNumber(),
		DeliveryFeeCents: c.DeliveryFee().Cents(),
		Address:          addressFromDomain(c.DefaultAddress()),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	fee, err := kernel.NewMoney(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}
	return customer.RestoreCustomer(
		dto.ID,
		dto.Email,
		dto.FirstName,
		dto.LastName,
		dto.CustomerNumber,
		fee,
		dto.Address.toDomain(),
	)
}
