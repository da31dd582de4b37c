package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/guard"
)

var ErrListPendingChangeRequestsQueryIsNotConstructed = errors.New(
	"ListPendingChangeRequestsQuery must be created via NewListPendingChangeRequestsQuery constructor",
)

// ListPendingChangeRequestsQuery is the staff work queue, oldest request first.
type ListPendingChangeRequestsQuery struct {
	guard guard.ConstructorGuard
}

func NewListPendingChangeRequestsQuery() ListPendingChangeRequestsQuery {
	return ListPendingChangeRequestsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPendingChangeRequestsQuery) Validate() error {
	return q.guard.Validate(ErrListPendingChangeRequestsQueryIsNotConstructed)
}

type ChangeRequestResponse struct {
	ID            string
	OrderID       int64
	OrderStatus   string
	CustomerID    int64
	CustomerEmail string
	Type          string
	Reason        string
	CreatedAt     time.Time
}
