package queries

import (
	"context"
	"database/sql"
	"errors"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	clock ports.Clock
}

func NewGetOrderQueryHandler(db *gorm.DB, clock ports.Clock) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, clock: clock}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var o OrderResponse
	var desired, placed, exported sql.NullTime

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_type,
			desired_time,
			delivery_street,
			delivery_city,
			delivery_postal_code,
			delivery_phone,
			delivery_notes,
			total_cents,
			delivery_fee_cents,
			created_at,
			placed_at,
			exported_at
		FROM orders
		WHERE id = ? AND customer_id = ?
	`, query.OrderID(), query.CustomerID()).Row().Scan(
		&o.ID,
		&o.Status,
		&o.DeliveryType,
		&desired,
		&o.DeliveryAddress.Street,
		&o.DeliveryAddress.City,
		&o.DeliveryAddress.PostalCode,
		&o.DeliveryAddress.Phone,
		&o.DeliveryAddress.Notes,
		&o.TotalCents,
		&o.DeliveryFeeCents,
		&o.CreatedAt,
		&placed,
		&exported,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	o.DesiredTime = nullTime(desired)
	o.PlacedAt = nullTime(placed)
	o.ExportedAt = nullTime(exported)
	o.GrandTotalCents = o.TotalCents + o.DeliveryFeeCents

	if o.Status == order.Placed.String() && o.PlacedAt != nil {
		now := h.clock.Now()
		cutoff := order.EditCutoff(*o.PlacedAt, now.Location())
		o.EditableUntil = &cutoff
		o.Editable = now.Before(cutoff)
	}

	if o.Items, err = loadLines(ctx, h.db, o.ID); err != nil {
		return OrderResponse{}, err
	}
	return o, nil
}
