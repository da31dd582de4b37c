package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListExportLogsQueryHandler struct {
	db *gorm.DB
}

func NewListExportLogsQueryHandler(db *gorm.DB) ListExportLogsQueryHandler {
	return ListExportLogsQueryHandler{db: db}
}

// Handle returns the most recent runs first.
func (h ListExportLogsQueryHandler) Handle(ctx context.Context, query ListExportLogsQuery) ([]ExportLogResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	logs := make([]ExportLogResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id::text, run_at, orders_exported, status, details
		FROM export_logs
		ORDER BY run_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var l ExportLogResponse
		if err = rows.Scan(&l.ID, &l.RunAt, &l.OrdersExported, &l.Status, &l.Details); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
