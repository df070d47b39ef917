package services

import "context"

// ProductCatalog resolves product metadata from the host e-commerce platform.
// The price-history core never stores products or variants itself; it only
// needs the variant ids behind a product id.
type ProductCatalog interface {
	// ListVariantIDs returns the variant ids of the given product.
	// A product with no variants yields an empty slice; an unknown product
	// yields apperrors.ErrNotFound.
	ListVariantIDs(ctx context.Context, productID string) ([]string, error)
}
