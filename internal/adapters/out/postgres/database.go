package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bakery/internal/adapters/out/postgres/changerequestrepo"
	"bakery/internal/adapters/out/postgres/customerrepo"
	"bakery/internal/adapters/out/postgres/exportlogrepo"
	"bakery/internal/adapters/out/postgres/orderrepo"
	"bakery/internal/adapters/out/postgres/productrepo"

	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects through lib/pq so that repositories can classify *pq.Error
// values, and hands the pool to GORM.
func Open(dsn string) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open gorm: %w", err)
	}
	return db, nil
}

// constraints holds the schema rules AutoMigrate cannot express. Every statement
// is idempotent.
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + orderrepo.SingleDraftIndex + `
		ON orders (customer_id) WHERE status = 'DRAFT'`,
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + changerequestrepo.SinglePendingIndex + `
		ON change_requests (order_id) WHERE status = 'PENDING'`,
	`CREATE INDEX IF NOT EXISTS idx_orders_exportable
		ON orders (placed_at) WHERE status = 'PLACED' AND exported_at IS NULL`,
	addForeignKey("orders", "fk_orders_customer", "customer_id", "customers(id)", "RESTRICT"),
	addForeignKey("order_items", "fk_order_items_product", "product_id", "products(id)", "RESTRICT"),
	addForeignKey("change_requests", "fk_change_requests_order", "order_id", "orders(id)", "CASCADE"),
}

func addForeignKey(table, name, column, references, onDelete string) string {
	return fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[2]s') THEN
		ALTER TABLE %[1]s ADD CONSTRAINT %[2]s
			FOREIGN KEY (%[3]s) REFERENCES %[4]s ON DELETE %[5]s;
	END IF;
END $$`, table, name, column, references, onDelete)
}

// Migrate creates or updates the schema.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&productrepo.ProductDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&changerequestrepo.ChangeRequestDTO{},
		&exportlogrepo.ExportLogDTO{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range constraints {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply constraint: %w", err)
		}
	}
	return nil
}
