// Package changerequestrepo persists change requests.
package changerequestrepo

import (
	"time"

	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type ChangeRequestDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    int64     `gorm:"not null;index"`
	CustomerID int64     `gorm:"not null;index"`
	Type       string    `gorm:"type:varchar(16);not null"`
	Status     string    `gorm:"type:varchar(16);not null;index"`
	Reason     string    `gorm:"type:text;not null"`
	StaffNotes string    `gorm:"type:text;not null;default:''"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null"`
	UpdatedAt  time.Time `gorm:"type:timestamptz;not null"`
}

func (ChangeRequestDTO) TableName() string {
	return "change_requests"
}

func fromDomain(r *changerequest.ChangeRequest) ChangeRequestDTO {
	return ChangeRequestDTO{
		ID:         r.ID().Bytes(),
		OrderID:    r.OrderID(),
		CustomerID: r.CustomerID(),
		Type:       r.Type().String(),
		Status:     r.Status().String(),
		Reason:     r.Reason(),
		StaffNotes: r.StaffNotes(),
		CreatedAt:  r.CreatedAt(),
		UpdatedAt:  r.UpdatedAt(),
	}
}

func toDomain(dto ChangeRequestDTO) (*changerequest.ChangeRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	typ, err := changerequest.ParseType(dto.Type)
	if err != nil {
		return nil, err
	}
	status, err := changerequest.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return changerequest.Restore(
		id,
		dto.OrderID,
		dto.CustomerID,
		typ,
		status,
		dto.Reason,
		dto.StaffNotes,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
