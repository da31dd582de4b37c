package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// DeliveryType tells whether the customer collects the order or has it delivered.
// Only Delivery orders carry the customer's delivery fee.
type DeliveryType int

const (
	UnknownDeliveryType DeliveryType = iota
	Pickup
	Delivery
)

func (d DeliveryType) String() string {
	switch d {
	case Pickup:
		return "PICKUP"
	case Delivery:
		return "DELIVERY"
	default:
		return "UNKNOWN"
	}
}

func (d DeliveryType) Validate() error {
	if d != Pickup && d != Delivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery type is invalid", fmt.Errorf("%d is not a valid delivery type", d))
	}
	return nil
}

// ParseDeliveryType accepts "PICKUP" or "DELIVERY".
func ParseDeliveryType(s string) (DeliveryType, error) {
	switch s {
	case "PICKUP":
		return Pickup, nil
	case "DELIVERY":
		return Delivery, nil
	default:
		return UnknownDeliveryType, errs.NewValueIsInvalidErrorWithCause(
			"delivery type is invalid",
			fmt.Errorf("%q is not a valid delivery type", s),
		)
	}
}
