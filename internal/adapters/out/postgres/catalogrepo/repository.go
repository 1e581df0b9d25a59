package catalogrepo

import (
	"context"
	"errors"

	"pos/internal/core/ports"
	"pos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogLookup implements CatalogLookup against the products table.
type GormCatalogLookup struct {
	db *gorm.DB
}

// NewGormCatalogLookup creates a new GORM catalog lookup.
func NewGormCatalogLookup(db *gorm.DB) *GormCatalogLookup {
	return &GormCatalogLookup{db: db}
}

// ResolveProduct returns the product for the given id.
func (r *GormCatalogLookup) ResolveProduct(ctx context.Context, productID int64) (ports.Product, error) {
	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("productId", productID)
		}
		return ports.Product{}, err
	}

	return toProduct(dto), nil
}
