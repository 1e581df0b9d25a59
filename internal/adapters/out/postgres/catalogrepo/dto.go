// Package catalogrepo resolves product ids against the products table.
// Catalog administration lives outside this system; this package only reads.
package catalogrepo

import (
	"pos/internal/core/ports"
)

// ProductDTO represents a sellable product row.
type ProductDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	Name       string
	PriceCents int64
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func toProduct(dto ProductDTO) ports.Product {
	return ports.Product{
		ID:         dto.ID,
		Name:       dto.Name,
		PriceCents: dto.PriceCents,
	}
}
