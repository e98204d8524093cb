package domain

import "context"

// ProductSearcher defines the interface for interacting with the structured
// product-data provider
type ProductSearcher interface {
	SearchProducts(ctx context.Context, query, region string) (*SearchResultSet, error)
	GetProductDetails(ctx context.Context, asin, region string) (*ItemDetail, error)
}
