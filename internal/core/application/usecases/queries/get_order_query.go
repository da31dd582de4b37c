package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New("GetOrderQuery must be created via NewGetOrderQuery constructor")

// GetOrderQuery reads one order of a customer. Orders of other customers are
// reported as not found.
type GetOrderQuery struct {
	customerID int64
	orderID    int64

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(customerID, orderID int64) (GetOrderQuery, error) {
	var validationErrors []error
	if customerID <= 0 {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidError("customerID"))
	}
	if orderID <= 0 {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidError("orderID"))
	}
	if len(validationErrors) > 0 {
		return GetOrderQuery{}, errors.Join(validationErrors...)
	}

	return GetOrderQuery{customerID: customerID, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) CustomerID() int64 { return q.customerID }
func (q GetOrderQuery) OrderID() int64    { return q.orderID }

type AddressResponse struct {
	Street     string
	City       string
	PostalCode string
	Phone      string
	Notes      string
}

type OrderResponse struct {
	ID               int64
	Status           string
	DeliveryType     string
	DesiredTime      *time.Time
	DeliveryAddress  AddressResponse
	Items            []LineResponse
	TotalCents       int64
	DeliveryFeeCents int64
	GrandTotalCents  int64
	CreatedAt        time.Time
	PlacedAt         *time.Time
	ExportedAt       *time.Time

	// EditableUntil is set for placed orders only.
	EditableUntil *time.Time
	Editable      bool
}
