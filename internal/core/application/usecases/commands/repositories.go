// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bakery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	ChangeRequestRepoFactory interface {
		ChangeRequestRepository() ports.ChangeRequestRepository
	}

	ExportLogRepoFactory interface {
		ExportLogRepository() ports.ExportLogRepository
	}

	// CartUoW covers cart editing and checkout.
	CartUoW interface {
		TxManager
		OrderRepoFactory
		ProductRepoFactory
		CustomerRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CatalogUoW covers product maintenance.
	CatalogUoW interface {
		TxManager
		ProductRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CustomerUoW covers customer profile maintenance.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ChangeRequestUoW covers filing and resolving change requests.
	ChangeRequestUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ChangeRequestRepoFactory
	}

	ChangeRequestUoWFactory interface {
		Create() ChangeRequestUoW
	}

	// ExportUoW covers one export run.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders, err := uow.OrderRepository().GetAllExportable(ctx, nil)
	//   // ... write batch, mark orders
	//   err = uow.ExportLogRepository().Add(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	ExportUoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ExportLogRepoFactory
	}

	ExportUoWFactory interface {
		Create() ExportUoW
	}
)
