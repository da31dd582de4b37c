package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderSummaryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.status,
			o.delivery_type,
			o.placed_at,
			COALESCE(SUM(i.quantity), 0),
			o.total_cents + o.delivery_fee_cents
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		WHERE o.customer_id = ? AND o.status <> 'DRAFT'
		GROUP BY o.id
		ORDER BY o.placed_at DESC NULLS LAST, o.id DESC
	`, query.CustomerID()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var o OrderSummaryResponse
		var placed sql.NullTime
		if err = rows.Scan(&o.ID, &o.Status, &o.DeliveryType, &placed, &o.ItemCount, &o.GrandTotalCents); err != nil {
			return nil, err
		}
		o.PlacedAt = nullTime(placed)
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
