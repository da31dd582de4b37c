package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

func validateID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// getOrCreateCart returns the customer's single Draft order, creating it when the
// customer has none. created tells the caller to Add rather than Update.
func getOrCreateCart(
	ctx context.Context,
	repo ports.OrderRepository,
	customerID int64,
	now time.Time,
) (cart *order.Order, created bool, err error) {
	cart, err = repo.GetDraftByCustomer(ctx, customerID)
	if err == nil {
		return cart, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	id, err := repo.NextID(ctx)
	if err != nil {
		return nil, false, err
	}
	cart, err = order.NewOrder(id, customerID, now)
	if err != nil {
		return nil, false, err
	}
	return cart, true, nil
}

func saveOrder(ctx context.Context, repo ports.OrderRepository, o *order.Order, created bool) error {
	if created {
		return repo.Add(ctx, o)
	}
	return repo.Update(ctx, o)
}

type orderLoader func(ctx context.Context, id int64) (*order.Order, error)

// getOwnedOrder loads an order through load and hides orders of other customers
// behind NotFound.
func getOwnedOrder(ctx context.Context, load orderLoader, customerID, orderID int64) (*order.Order, error) {
	o, err := load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID() != customerID {
		return nil, errs.NewObjectNotFoundError("order", orderID)
	}
	return o, nil
}
