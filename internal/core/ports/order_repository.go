// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work, the batch writer and the
// notification sender.
package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// lines included.
type OrderRepository interface {
	// NextID reserves the identifier for a new order.
	NextID(ctx context.Context) (int64, error)

	// Add persists a new order with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order and replaces its lines. It fails with
	// ErrConcurrentModification when the stored order has been exported.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ErrObjectNotFound when the order does not exist.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// GetForUpdate is Get plus a row lock held until the transaction ends.
	// Handlers that change an existing order load it this way.
	GetForUpdate(ctx context.Context, id int64) (*order.Order, error)

	// GetDraftByCustomer returns the customer's cart locked for update, or
	// errs.ErrObjectNotFound when the customer has none.
	GetDraftByCustomer(ctx context.Context, customerID int64) (*order.Order, error)

	// GetAllExportable returns placed, never exported orders, oldest placement
	// first, optionally restricted to placements at or after since. The rows stay
	// locked until the surrounding transaction ends.
	GetAllExportable(ctx context.Context, since *time.Time) ([]*order.Order, error)

	// MarkExported writes the exported state of orders in one statement that
	// re-checks status = PLACED and exported_at IS NULL. It returns the number of
	// rows that still matched.
	MarkExported(ctx context.Context, orders []*order.Order) (int64, error)
}
