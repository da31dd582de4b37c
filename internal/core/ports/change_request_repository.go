package ports

import (
	"context"

	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/kernel"
)

type ChangeRequestRepository interface {
	// Add fails with changerequest.ErrDuplicatePending when the order already has
	// a pending request stored.
	Add(ctx context.Context, request *changerequest.ChangeRequest) error
	Update(ctx context.Context, request *changerequest.ChangeRequest) error
	Get(ctx context.Context, id kernel.UUID) (*changerequest.ChangeRequest, error)
	HasPending(ctx context.Context, orderID int64) (bool, error)
}

// ExportLogRepository is append-only.
type ExportLogRepository interface {
	Add(ctx context.Context, entry *export.Log) error
}
