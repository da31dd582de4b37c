// Package pgtest starts a disposable PostgreSQL container with the service
// schema for integration tests.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"bakery/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated database in its own container.
type Database struct {
	Container *tcpostgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// Start runs postgres:15-alpine and applies the schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start container: %w", err)
	}

	d := &Database{Container: container}
	if d.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	if d.DB, err = postgres.Open(d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	if err = postgres.Migrate(ctx, d.DB); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}
	return d, nil
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate(ctx context.Context) error {
	return d.DB.WithContext(ctx).Exec(`TRUNCATE TABLE
		order_items, change_requests, orders, export_logs, products, customers
		RESTART IDENTITY CASCADE`).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.DB != nil {
		if sqlDB, err := d.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
