package order

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacityExceeded is wrapped by CapacityExceededError.
	ErrCapacityExceeded = errors.New("max quantity per order exceeded")

	// ErrProductUnavailable is returned when a new line refers to a product that is not for sale.
	ErrProductUnavailable = errors.New("product is not available")
)

// CapacityPolicy decides what happens when a line would exceed the product's max-per-order.
type CapacityPolicy int

const (
	// RejectOverCapacity fails with CapacityExceededError and leaves the line untouched.
	RejectOverCapacity CapacityPolicy = iota
	// ClampToCapacity stores the product's max-per-order instead.
	ClampToCapacity
)

type CapacityExceededError struct {
	ProductID int64
	Requested int
	Max       int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("%s: product %d, requested %d, max %d", ErrCapacityExceeded, e.ProductID, e.Requested, e.Max)
}

func (e *CapacityExceededError) Unwrap() error {
	return ErrCapacityExceeded
}

func (p CapacityPolicy) apply(productID int64, requested, maxPerOrder int) (int, error) {
	if requested <= maxPerOrder {
		return requested, nil
	}
	if p == ClampToCapacity {
		return maxPerOrder, nil
	}
	return 0, &CapacityExceededError{ProductID: productID, Requested: requested, Max: maxPerOrder}
}
