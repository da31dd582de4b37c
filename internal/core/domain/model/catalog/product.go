// Package catalog holds the product registry. A product's price is the current
// price; order lines keep their own snapshot and never read it back.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// DefaultMaxPerOrder is the per-order cap used when none is configured.
const DefaultMaxPerOrder = 99

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrProductInUse is returned when deleting a product still referenced by order lines.
	ErrProductInUse = errors.New("product is referenced by order lines")
)

// Product is a sellable bakery item identified by its SKU.
//
// Invariants:
//   - sku and name are not empty
//   - price is a valid, non-negative Money
//   - maxPerOrder is at least 1
type Product struct {
	id          int64
	sku         string
	name        string
	description string
	price       kernel.Money
	available   bool
	maxPerOrder int

	isConstructed bool
}

// NewProduct creates an available product. The id comes from the product repository's NextID.
func NewProduct(id int64, sku, name, description string, price kernel.Money, maxPerOrder int) (*Product, error) {
	p := &Product{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setSKU(sku),
		p.setName(name),
		p.setPrice(price),
		p.setMaxPerOrder(maxPerOrder),
	); err != nil {
		return nil, err
	}
	p.description = strings.TrimSpace(description)

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(
	id int64,
	sku, name, description string,
	price kernel.Money,
	available bool,
	maxPerOrder int,
) (*Product, error) {
	p, err := NewProduct(id, sku, name, description, price, maxPerOrder)
	if err != nil {
		return nil, err
	}
	p.available = available
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 { return p.id }
func (p *Product) SKU() string { return p.sku }
func (p *Product) Name() string { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() kernel.Money { return p.price }
func (p *Product) IsAvailable() bool { return p.available }
func (p *Product) MaxPerOrder() int { return p.maxPerOrder }

// ChangePrice sets the current price. Existing order lines are not affected.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// Describe replaces name and description.
func (p *Product) Describe(name, description string) error {
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = strings.TrimSpace(description)
	return nil
}

// SetAvailable toggles whether new cart lines may be created for the product.
func (p *Product) SetAvailable(available bool) {
	p.available = available
}

func (p *Product) ChangeMaxPerOrder(maxPerOrder int) error {
	return p.setMaxPerOrder(maxPerOrder)
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setMaxPerOrder(maxPerOrder int) error {
	if maxPerOrder < 1 {
		return errs.NewValueIsOutOfRangeError("max per order", maxPerOrder, 1, "unbounded")
	}
	p.maxPerOrder = maxPerOrder
	return nil
}
