package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListPendingChangeRequestsQueryHandler struct {
	db *gorm.DB
}

func NewListPendingChangeRequestsQueryHandler(db *gorm.DB) ListPendingChangeRequestsQueryHandler {
	return ListPendingChangeRequestsQueryHandler{db: db}
}

func (h ListPendingChangeRequestsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingChangeRequestsQuery,
) ([]ChangeRequestResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	requests := make([]ChangeRequestResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id::text,
			r.order_id,
			o.status,
			r.customer_id,
			c.email,
			r.type,
			r.reason,
			r.created_at
		FROM change_requests r
		JOIN orders o ON o.id = r.order_id
		JOIN customers c ON c.id = r.customer_id
		WHERE r.status = 'PENDING'
		ORDER BY r.created_at, r.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r ChangeRequestResponse
		if err = rows.Scan(
			&r.ID,
			&r.OrderID,
			&r.OrderStatus,
			&r.CustomerID,
			&r.CustomerEmail,
			&r.Type,
			&r.Reason,
			&r.CreatedAt,
		); err != nil {
			return nil, err
		}
		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
