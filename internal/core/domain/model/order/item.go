package order

import (
	"errors"
	"fmt"
	"strings"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

// Item is one order line. Unit price, SKU and name are copied from the product
// when the line is created and are never refreshed from the catalog.
type Item struct {
	productID int64
	sku       string
	name      string
	quantity  int
	unitPrice kernel.Money
}

func newItem(product *catalog.Product, quantity int) *Item {
	return &Item{
		productID: product.ID(),
		sku:       product.SKU(),
		name:      product.Name(),
		quantity:  quantity,
		unitPrice: product.Price(),
	}
}

// RestoreItem rebuilds a persisted order line.
func RestoreItem(productID int64, sku, name string, quantity int, unitPrice kernel.Money) (*Item, error) {
	var err error
	if productID <= 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("product id is invalid", fmt.Errorf("%d is not greater than 0", productID)))
	}
	if quantity < 1 {
		err = errors.Join(err, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "max per order"))
	}
	if vErr := unitPrice.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if err != nil {
		return nil, err
	}

	return &Item{
		productID: productID,
		sku:       strings.TrimSpace(sku),
		name:      strings.TrimSpace(name),
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

func (i *Item) ProductID() int64 { return i.productID }
func (i *Item) SKU() string { return i.sku }
func (i *Item) Name() string { return i.name }
func (i *Item) Quantity() int { return i.quantity }
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal is quantity × unit price.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
