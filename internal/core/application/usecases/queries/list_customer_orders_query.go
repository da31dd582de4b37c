package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrListCustomerOrdersQueryIsNotConstructed = errors.New(
	"ListCustomerOrdersQuery must be created via NewListCustomerOrdersQuery constructor",
)

// ListCustomerOrdersQuery returns the order history of a customer: every order
// except the cart, newest placement first.
type ListCustomerOrdersQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewListCustomerOrdersQuery(customerID int64) (ListCustomerOrdersQuery, error) {
	if customerID <= 0 {
		return ListCustomerOrdersQuery{}, errs.NewValueIsInvalidError("customerID")
	}
	return ListCustomerOrdersQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomerOrdersQueryIsNotConstructed)
}

func (q ListCustomerOrdersQuery) CustomerID() int64 { return q.customerID }

type OrderSummaryResponse struct {
	ID              int64
	Status          string
	DeliveryType    string
	PlacedAt        *time.Time
	ItemCount       int
	GrandTotalCents int64
}
