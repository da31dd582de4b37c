// Package exportlogrepo stores the audit entries of export runs.
package exportlogrepo

import (
	"context"
	"time"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/export"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExportLogDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	RunAt          time.Time `gorm:"type:timestamptz;not null;index:idx_export_logs_run_at,sort:desc"`
	OrdersExported int       `gorm:"not null;default:0"`
	Status         string    `gorm:"type:varchar(8);not null"`
	Details        string    `gorm:"type:text;not null;default:''"`
}

func (ExportLogDTO) TableName() string {
	return "export_logs"
}

// GormExportLogRepository implements the append-only ports.ExportLogRepository.
type GormExportLogRepository struct {
	db *gorm.DB
}

func NewGormExportLogRepository(db *gorm.DB) *GormExportLogRepository {
	return &GormExportLogRepository{db: db}
}

func (r *GormExportLogRepository) Add(ctx context.Context, entry *export.Log) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := ExportLogDTO{
		ID:             entry.ID().Bytes(),
		RunAt:          entry.RunAt(),
		OrdersExported: entry.OrdersExported(),
		Status:         entry.Status().String(),
		Details:        entry.Details(),
	}
	return pgerr.Wrap(r.db.WithContext(ctx).Create(&dto).Error)
}
