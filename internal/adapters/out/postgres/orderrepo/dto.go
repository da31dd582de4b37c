// Package orderrepo persists order aggregates with their lines.
package orderrepo

import (
	"slices"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderDTO is the row of the orders table. Status and delivery type are stored
// by name so the table stays readable for the export tooling.
type OrderDTO struct {
	ID               int64      `gorm:"primaryKey"`
	CustomerID       int64      `gorm:"not null;index"`
	Status           string     `gorm:"type:varchar(16);not null;index"`
	TotalCents       int64      `gorm:"not null;default:0"`
	DeliveryFeeCents int64      `gorm:"not null;default:0"`
	DeliveryType     string     `gorm:"type:varchar(16);not null"`
	DesiredTime      *time.Time `gorm:"type:timestamptz"`
	Address          AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	CreatedAt        time.Time  `gorm:"type:timestamptz;not null"`
	PlacedAt         *time.Time `gorm:"type:timestamptz;index"`
	ExportedAt       *time.Time `gorm:"type:timestamptz"`
	ExternalExportID string     `gorm:"type:varchar(128);not null;default:''"`
	Items            []ItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one order line. (order_id, product_id) is the primary key, so a
// product appears at most once per order.
type ItemDTO struct {
	OrderID        int64  `gorm:"primaryKey;autoIncrement:false"`
	ProductID      int64  `gorm:"primaryKey;autoIncrement:false"`
	Position       int    `gorm:"not null"`
	SKU            string `gorm:"type:varchar(64);not null"`
	Name           string `gorm:"type:varchar(255);not null"`
	Quantity       int    `gorm:"not null;check:chk_order_items_quantity,quantity >= 1"`
	UnitPriceCents int64  `gorm:"not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

type AddressDTO struct {
	Street     string `gorm:"type:varchar(255);not null;default:''"`
	City       string `gorm:"type:varchar(100);not null;default:''"`
	PostalCode string `gorm:"type:varchar(16);not null;default:''"`
	Phone      string `gorm:"type:varchar(32);not null;default:''"`
	Notes      string `gorm:"type:text;not null;default:''"`
}

func fromDomain(o *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, o.ItemCount())
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:        o.ID(),
			ProductID:      item.ProductID(),
			Position:       i,
			SKU:            item.SKU(),
			Name:           item.Name(),
			Quantity:       item.Quantity(),
			UnitPriceCents: item.UnitPrice().Cents(),
		})
	}

	address := o.DeliveryAddress()
	return OrderDTO{
		ID:               o.ID(),
		CustomerID:       o.CustomerID(),
		Status:           o.Status().String(),
		TotalCents:       o.Total().Cents(),
		DeliveryFeeCents: o.DeliveryFee().Cents(),
		DeliveryType:     o.DeliveryType().String(),
		DesiredTime:      o.DesiredTime(),
		Address: AddressDTO{
			Street:     address.Street(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
			Phone:      address.Phone(),
			Notes:      address.Notes(),
		},
		CreatedAt:        o.CreatedAt(),
		PlacedAt:         o.PlacedAt(),
		ExportedAt:       o.ExportedAt(),
		ExternalExportID: o.ExternalExportID(),
		Items:            items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	deliveryType, err := order.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}
	fee, err := kernel.NewMoney(dto.DeliveryFeeCents)
	if err != nil {
		return nil, err
	}

	rows := slices.Clone(dto.Items)
	slices.SortFunc(rows, func(a, b ItemDTO) int { return a.Position - b.Position })

	items := make([]*order.Item, 0, len(rows))
	for _, row := range rows {
		price, priceErr := kernel.NewMoney(row.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		item, itemErr := order.RestoreItem(row.ProductID, row.SKU, row.Name, row.Quantity, price)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.State{
		ID:           dto.ID,
		CustomerID:   dto.CustomerID,
		Status:       status,
		Items:        items,
		Total:        total,
		DeliveryFee:  fee,
		DeliveryType: deliveryType,
		DesiredTime:  dto.DesiredTime,
		DeliveryAddress: kernel.NewAddress(
			dto.Address.Street,
			dto.Address.City,
			dto.Address.PostalCode,
			dto.Address.Phone,
			dto.Address.Notes,
		),
		CreatedAt:        dto.CreatedAt,
		PlacedAt:         dto.PlacedAt,
		ExportedAt:       dto.ExportedAt,
		ExternalExportID: dto.ExternalExportID,
	})
}
