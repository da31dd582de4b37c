package queries

import (
	"errors"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New("GetCartQuery must be created via NewGetCartQuery constructor")

type GetCartQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

func NewGetCartQuery(customerID int64) (GetCartQuery, error) {
	if customerID <= 0 {
		return GetCartQuery{}, errs.NewValueIsInvalidError("customerID")
	}
	return GetCartQuery{customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

func (q GetCartQuery) CustomerID() int64 { return q.customerID }

// CartResponse is empty (OrderID 0, no lines) when the customer has no cart.
type CartResponse struct {
	OrderID          int64
	Items            []LineResponse
	TotalCents       int64
	DeliveryFeeCents int64
	GrandTotalCents  int64
}
