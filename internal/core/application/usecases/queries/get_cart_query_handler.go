package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

type GetCartQueryHandler struct {
	db *gorm.DB
}

func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	cart := CartResponse{Items: []LineResponse{}}

	err := h.db.WithContext(ctx).Raw(`
		SELECT id, total_cents, delivery_fee_cents
		FROM orders
		WHERE customer_id = ? AND status = 'DRAFT'
	`, query.CustomerID()).Row().Scan(&cart.OrderID, &cart.TotalCents, &cart.DeliveryFeeCents)
	if errors.Is(err, sql.ErrNoRows) {
		return cart, nil
	}
	if err != nil {
		return CartResponse{}, err
	}

	if cart.Items, err = loadLines(ctx, h.db, cart.OrderID); err != nil {
		return CartResponse{}, err
	}
	cart.GrandTotalCents = cart.TotalCents + cart.DeliveryFeeCents
	return cart, nil
}
