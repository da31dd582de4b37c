// Package productrepo persists catalog products.
package productrepo

import (
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/kernel"
)

// ProductDTO is the row of the products table.
type ProductDTO struct {
	ID          int64  `gorm:"primaryKey"`
	SKU         string `gorm:"type:varchar(64);not null;uniqueIndex:idx_products_sku"`
	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text;not null;default:''"`
	PriceCents  int64  `gorm:"not null;check:chk_products_price,price_cents >= 0"`
	Available   bool   `gorm:"not null;default:true;index"`
	MaxPerOrder int    `gorm:"not null;default:99;check:chk_products_max_per_order,max_per_order >= 1"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.ID(),
		SKU:         p.SKU(),
		Name:        p.Name(),
		Description: p.Description(),
		PriceCents:  p.Price().Cents(),
		Available:   p.IsAvailable(),
		MaxPerOrder: p.MaxPerOrder(),
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	price, err := kernel.NewMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	return catalog.RestoreProduct(dto.ID, dto.SKU, dto.Name, dto.Description, price, dto.Available, dto.MaxPerOrder)
}
