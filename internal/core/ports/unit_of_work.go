package ports

import (
	"context"
	"errors"
)

// ErrConcurrentModification is returned when the database aborted a transaction
// because of a concurrent writer. The operation can be retried.
var ErrConcurrentModification = errors.New("concurrent modification")

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	ProductRepository() ProductRepository
	CustomerRepository() CustomerRepository
	ChangeRequestRepository() ChangeRequestRepository
	ExportLogRepository() ExportLogRepository
}
