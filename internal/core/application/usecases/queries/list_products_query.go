package queries

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// ListProductsQuery lists the catalog ordered by name. Customers see available
// products only; staff see all of them.
type ListProductsQuery struct {
	onlyAvailable bool

	guard guard.ConstructorGuard
}

func NewListProductsQuery(onlyAvailable bool) ListProductsQuery {
	return ListProductsQuery{onlyAvailable: onlyAvailable, guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

func (q ListProductsQuery) OnlyAvailable() bool { return q.onlyAvailable }

type ProductResponse struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Available   bool
	MaxPerOrder int
}
