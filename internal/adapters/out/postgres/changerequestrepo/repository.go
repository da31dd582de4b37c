package changerequestrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// SinglePendingIndex is the partial unique index allowing one Pending request per order.
const SinglePendingIndex = "idx_change_requests_single_pending"

// GormChangeRequestRepository implements ports.ChangeRequestRepository using GORM.
type GormChangeRequestRepository struct {
	db *gorm.DB
}

func NewGormChangeRequestRepository(db *gorm.DB) *GormChangeRequestRepository {
	return &GormChangeRequestRepository{db: db}
}

// Add stores a new request. A concurrent second pending request for the same
// order fails on SinglePendingIndex with changerequest.ErrDuplicatePending.
func (r *GormChangeRequestRepository) Add(ctx context.Context, aggregate *changerequest.ChangeRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, SinglePendingIndex) {
			return fmt.Errorf("%w: order %d", changerequest.ErrDuplicatePending, dto.OrderID)
		}
		return pgerr.Wrap(err)
	}
	return nil
}

// Update stores a resolution. Only a pending row is written, so of two staff
// members resolving the same request the second gets
// ports.ErrConcurrentModification.
func (r *GormChangeRequestRepository) Update(ctx context.Context, aggregate *changerequest.ChangeRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ChangeRequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, changerequest.Pending.String()).
		Updates(map[string]any{
			"status":      dto.Status,
			"staff_notes": dto.StaffNotes,
			"updated_at":  dto.UpdatedAt,
		})
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ChangeRequestDTO{}).Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return pgerr.Wrap(err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("change request", aggregate.ID().String())
		}
		return fmt.Errorf("%w: change request %s is already resolved", ports.ErrConcurrentModification, aggregate.ID())
	}
	return nil
}

func (r *GormChangeRequestRepository) Get(ctx context.Context, id kernel.UUID) (*changerequest.ChangeRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ChangeRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("change request", id.String())
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

func (r *GormChangeRequestRepository) HasPending(ctx context.Context, orderID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ChangeRequestDTO{}).
		Where("order_id = ? AND status = ?", orderID, changerequest.Pending.String()).
		Count(&count).Error
	if err != nil {
		return false, pgerr.Wrap(err)
	}
	return count > 0, nil
}
