package customerrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('customers', 'id'))").
		Scan(&id).Error
	return id, pgerr.Wrap(err)
}

// Add stores a new customer. Emails are unique.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "idx_customers_email") {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", aggregate.Email()))
		}
		return pgerr.Wrap(err)
	}
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		if pgerr.IsUniqueViolation(result.Error, "idx_customers_email") {
			return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%s is already registered", aggregate.Email()))
		}
		return pgerr.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id)
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

func (r *GormCustomerRepository) GetMany(ctx context.Context, ids []int64) (map[int64]*customer.Customer, error) {
	customers := make(map[int64]*customer.Customer, len(ids))
	if len(ids) == 0 {
		return customers, nil
	}

	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap(err)
	}

	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers[c.ID()] = c
	}
	return customers, nil
}
