package productrepo

import (
	"context"
	"errors"
	"fmt"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// NextID draws the next value of the products id sequence.
func (r *GormProductRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('products', 'id'))").
		Scan(&id).Error
	return id, pgerr.Wrap(err)
}

// Add stores a new product. A taken SKU is reported as an invalid value.
func (r *GormProductRepository) Add(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, "idx_products_sku") {
			return errs.NewValueIsInvalidErrorWithCause("sku", fmt.Errorf("%q already exists", aggregate.SKU()))
		}
		return pgerr.Wrap(err)
	}
	return nil
}

func (r *GormProductRepository) Update(ctx context.Context, aggregate *catalog.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ProductDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", dto.ID)
	}
	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id)
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

func (r *GormProductRepository) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", sku)
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

// Delete removes the product row. The order_items foreign key is ON DELETE
// RESTRICT, so a product that was ever ordered cannot be deleted.
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id)
	if result.Error != nil {
		if pgerr.IsForeignKeyViolation(result.Error) {
			return fmt.Errorf("%w: product %d", catalog.ErrProductInUse, id)
		}
		return pgerr.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id)
	}
	return nil
}
