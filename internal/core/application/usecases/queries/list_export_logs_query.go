package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var ErrListExportLogsQueryIsNotConstructed = errors.New(
	"ListExportLogsQuery must be created via NewListExportLogsQuery constructor",
)

const MaxExportLogs = 50

type ListExportLogsQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewListExportLogsQuery clamps limit to 1..MaxExportLogs; zero or negative
// values mean MaxExportLogs.
func NewListExportLogsQuery(limit int) ListExportLogsQuery {
	if limit <= 0 || limit > MaxExportLogs {
		limit = MaxExportLogs
	}
	return ListExportLogsQuery{limit: limit, guard: guard.NewConstructorGuard()}
}

func (q ListExportLogsQuery) Validate() error {
	return q.guard.Validate(ErrListExportLogsQueryIsNotConstructed)
}

func (q ListExportLogsQuery) Limit() int { return q.limit }

type ExportLogResponse struct {
	ID             string
	RunAt          time.Time
	OrdersExported int
	Status         string
	Details        string
}
