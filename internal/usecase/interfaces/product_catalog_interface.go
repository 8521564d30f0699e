package interfaces

import (
	"context"
	"ignite_shop/internal/domain/entities"
)

// IProductCatalog abstracts the payment provider's product and price API
// (e.g. Stripe).
//
// Lookups return a zero-value entity (empty ID) and a nil error when the
// provider reports the resource as missing.
//
//go:generate mockgen -source=product_catalog_interface.go -destination=mocks/product_catalog_interface_mock.go -package=mock_interfaces
type IProductCatalog interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	GetPrice(ctx context.Context, id string) (entities.Price, error)
}
