package queries

import (
	"context"

	"gorm.io/gorm"
)

type LineResponse struct {
	ProductID      int64
	SKU            string
	Name           string
	Quantity       int
	UnitPriceCents int64
	SubtotalCents  int64

	// Available reflects the product today, not at the time the line was added.
	Available bool
}

func loadLines(ctx context.Context, db *gorm.DB, orderID int64) ([]LineResponse, error) {
	lines := make([]LineResponse, 0)

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			i.product_id,
			i.sku,
			i.name,
			i.quantity,
			i.unit_price_cents,
			COALESCE(p.available, false)
		FROM order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.order_id = ?
		ORDER BY i.position
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l LineResponse
		if err = rows.Scan(&l.ProductID, &l.SKU, &l.Name, &l.Quantity, &l.UnitPriceCents, &l.Available); err != nil {
			return nil, err
		}
		l.SubtotalCents = l.UnitPriceCents * int64(l.Quantity)
		lines = append(lines, l)
	}

	return lines, rows.Err()
}
