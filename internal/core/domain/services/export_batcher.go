package services

import (
	"fmt"
	"time"

	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"
)

// ExportBatcher prepares a batch of placed orders for the external record system.
//
// Business rules:
//   - only Placed orders that were never exported can be part of a batch
//   - every order yields one record per line, in line order
//   - either all orders of a batch are marked exported or none is
type ExportBatcher struct{}

func NewExportBatcher() ExportBatcher {
	return ExportBatcher{}
}

// Records flattens orders into export records. customers must contain the owner
// of every order.
func (ExportBatcher) Records(orders []*order.Order, customers map[int64]*customer.Customer) ([]export.Record, error) {
	var records []export.Record

	for _, o := range orders {
		if err := checkExportable(o); err != nil {
			return nil, err
		}
		owner, ok := customers[o.CustomerID()]
		if !ok || owner == nil {
			return nil, errs.NewObjectNotFoundErrorWithCause("customer", o.CustomerID(),
				fmt.Errorf("owner of order %d", o.ID()))
		}

		for _, item := range o.Items() {
			records = append(records, export.Record{
				OrderID:        o.ID(),
				CustomerID:     owner.ID(),
				CustomerEmail:  owner.Email(),
				FirstName:      owner.FirstName(),
				LastName:       owner.LastName(),
				SKU:            item.SKU(),
				ProductName:    item.Name(),
				Quantity:       item.Quantity(),
				UnitPriceCents: item.UnitPrice().Cents(),
				PlacedAt:       *o.PlacedAt(),
				OrderTotal:     o.Total().Cents(),
			})
		}
	}

	return records, nil
}

// MarkExported marks every order as part of batch. All orders are checked before
// the first one changes, so a failure leaves the batch untouched.
func (ExportBatcher) MarkExported(orders []*order.Order, now time.Time, batch string) error {
	for _, o := range orders {
		if err := checkExportable(o); err != nil {
			return err
		}
	}
	for _, o := range orders {
		if err := o.MarkExported(now, batch); err != nil {
			return err
		}
	}
	return nil
}

func checkExportable(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.ExportedAt() != nil {
		return fmt.Errorf("%w: order %d", order.ErrAlreadyExported, o.ID())
	}
	if _, err := o.Status().Export(); err != nil {
		return err
	}
	if o.PlacedAt() == nil {
		return errs.NewValueIsRequiredErrorWithCause("placed at", fmt.Errorf("order %d", o.ID()))
	}
	return nil
}
