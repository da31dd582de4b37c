package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/internal/adapters/out/postgres/pgerr"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SingleDraftIndex is the partial unique index allowing one Draft order per customer.
const SingleDraftIndex = "idx_orders_single_draft"

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence('orders', 'id'))").
		Scan(&id).Error
	return id, pgerr.Wrap(err)
}

// Add saves a new order with its lines. A second cart for the same customer
// loses against the single-draft index and is reported as a concurrent
// modification.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, SingleDraftIndex) {
			return fmt.Errorf("%w: customer %d already has a cart", ports.ErrConcurrentModification, dto.CustomerID)
		}
		return pgerr.Wrap(err)
	}
	return nil
}

// Update writes the order row in one statement and replaces its lines. Exported
// orders are immutable, so the statement never matches a row that an export run
// has marked; losing that race is reported as ports.ErrConcurrentModification.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status <> ? AND exported_at IS NULL", dto.ID, order.Exported.String()).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(&dto)
	if result.Error != nil {
		return pgerr.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return r.missingRow(ctx, dto.ID)
	}

	if err := db.Where("order_id = ?", dto.ID).Delete(&ItemDTO{}).Error; err != nil {
		return pgerr.Wrap(err)
	}
	if len(dto.Items) > 0 {
		if err := db.Create(&dto.Items).Error; err != nil {
			return pgerr.Wrap(err)
		}
	}
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

// missingRow tells a deleted order from one that left the updatable states.
func (r *GormOrderRepository) missingRow(ctx context.Context, id int64) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return pgerr.Wrap(err)
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id)
	}
	return fmt.Errorf("%w: order %d was exported meanwhile", ports.ErrConcurrentModification, id)
}

// GetForUpdate loads the order and locks its row until the transaction ends.
// A running export holding the row makes the call wait and then see the
// exported state.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.withItems(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

// GetDraftByCustomer locks the cart row, so concurrent edits of one cart run one
// after the other.
func (r *GormOrderRepository) GetDraftByCustomer(ctx context.Context, customerID int64) (*order.Order, error) {
	var dto OrderDTO
	err := r.withItems(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "customer_id = ? AND status = ?", customerID, order.Draft.String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("cart", customerID, errors.New("customer has no draft order"))
		}
		return nil, pgerr.Wrap(err)
	}
	return toDomain(dto)
}

// GetAllExportable selects the export candidates FOR UPDATE. A concurrent
// cancellation or export run blocks on these rows until the caller's
// transaction ends.
func (r *GormOrderRepository) GetAllExportable(ctx context.Context, since *time.Time) ([]*order.Order, error) {
	query := r.withItems(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("status = ? AND exported_at IS NULL", order.Placed.String())
	if since != nil {
		query = query.Where("placed_at >= ?", *since)
	}

	var dtos []OrderDTO
	if err := query.Order("placed_at, id").Find(&dtos).Error; err != nil {
		return nil, pgerr.Wrap(err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// MarkExported persists the exported state. Each UPDATE only matches rows that
// are still placed and unexported; the caller compares the affected count with
// the number of orders it selected.
func (r *GormOrderRepository) MarkExported(ctx context.Context, orders []*order.Order) (int64, error) {
	var affected int64
	db := r.db.WithContext(ctx)

	for _, o := range orders {
		if o.Status() != order.Exported || o.ExportedAt() == nil {
			return affected, fmt.Errorf("%w: order %d is %s", order.ErrInvalidTransition, o.ID(), o.Status())
		}

		result := db.Model(&OrderDTO{}).
			Where("id = ? AND status = ? AND exported_at IS NULL", o.ID(), order.Placed.String()).
			Updates(map[string]any{
				"status":             o.Status().String(),
				"exported_at":        *o.ExportedAt(),
				"external_export_id": o.ExternalExportID(),
			})
		if result.Error != nil {
			return affected, pgerr.Wrap(result.Error)
		}
		affected += result.RowsAffected
	}
	return affected, nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
