package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetCostsQueryHandler struct {
	db *gorm.DB
}

func NewGetCostsQueryHandler(db *gorm.DB) GetCostsQueryHandler {
	return GetCostsQueryHandler{db: db}
}

func (h GetCostsQueryHandler) Handle(ctx context.Context, query GetCostsQuery) (CostsResponse, error) {
	if err := query.Validate(); err != nil {
		return CostsResponse{}, err
	}

	now := query.Now()
	week := now.Add(-CostsShortWindow)
	month := now.Add(-CostsLongWindow)

	var costs CostsResponse
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(total_cents + delivery_fee_cents) FILTER (WHERE placed_at >= @week), 0),
			COUNT(*) FILTER (WHERE placed_at >= @week),
			COALESCE(SUM(total_cents + delivery_fee_cents), 0),
			COUNT(*)
		FROM orders
		WHERE customer_id = @customer
			AND status IN ('PLACED', 'EXPORTED')
			AND placed_at >= @month
			AND placed_at <= @now
	`, map[string]any{
		"customer": query.CustomerID(),
		"week":     week,
		"month":    month,
		"now":      now,
	}).Row().Scan(&costs.LastWeekCents, &costs.LastWeekOrders, &costs.LastMonthCents, &costs.LastMonthOrders)
	if err != nil {
		return CostsResponse{}, err
	}

	return costs, nil
}
