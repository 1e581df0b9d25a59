package ports

import (
	"context"
)

// Product is the catalog collaborator's view of a sellable product.
// Orders snapshot PriceCents at creation time; the catalog remains the
// live source of truth for prices.
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
}

// CatalogLookup resolves product ids at order time. Catalog administration
// itself lives outside this system; only resolution is needed here.
type CatalogLookup interface {
	// ResolveProduct returns the product for the given id.
	// Returns ObjectNotFoundError for an unknown product id.
	ResolveProduct(ctx context.Context, productID int64) (Product, error)
}
