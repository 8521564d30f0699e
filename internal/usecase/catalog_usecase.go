package usecase

import (
	"context"
	"errors"
	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/domain/money"
	"ignite_shop/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product has no default price")
	ErrInvalidProductID   = errors.New("invalid product id")
)

// ICatalogUseCase maps provider products into display records.
//
// Both operations run ahead of request time (startup prerender and page
// regeneration), never while a customer is waiting on checkout.

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/catalog_usecase_mock.go -package=mocks
type ICatalogUseCase interface {
	ListCatalog(ctx context.Context) ([]entities.CatalogItem, error)
	GetProductDetail(ctx context.Context, productID string) (entities.ProductDetail, error)
}

type CatalogUseCase struct {
	catalog          interfaces.IProductCatalog
	placeholderImage string
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.IProductCatalog, placeholderImage string) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, placeholderImage: placeholderImage}
}

// ListCatalog keeps the provider's order. Products without a default price
// cannot be bought and are left out.
func (u *CatalogUseCase) ListCatalog(ctx context.Context) ([]entities.CatalogItem, error) {
	products, err := u.catalog.ListProducts(ctx)
	if err != nil {
		log.Printf("[catalog][usecase] list products failed err=%v", err)
		return nil, err
	}

	items := make([]entities.CatalogItem, 0, len(products))
	for _, p := range products {
		if p.DefaultPrice == nil {
			log.Printf("[catalog][usecase] skipping product without default price product_id=%s", p.ID)
			continue
		}
		items = append(items, u.toCatalogItem(p))
	}
	log.Printf("[catalog][usecase] list success products=%d items=%d", len(products), len(items))
	return items, nil
}

func (u *CatalogUseCase) GetProductDetail(ctx context.Context, productID string) (entities.ProductDetail, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.ProductDetail{}, ErrInvalidProductID
	}

	p, err := u.catalog.GetProduct(ctx, productID)
	if err != nil {
		log.Printf("[catalog][usecase] get product failed product_id=%s err=%v", productID, err)
		return entities.ProductDetail{}, err
	}
	if p.ID == "" {
		return entities.ProductDetail{}, ErrProductNotFound
	}
	if p.DefaultPrice == nil {
		log.Printf("[catalog][usecase] product without default price product_id=%s", productID)
		return entities.ProductDetail{}, ErrProductUnavailable
	}

	return entities.ProductDetail{
		CatalogItem:    u.toCatalogItem(p),
		Description:    p.Description,
		DefaultPriceID: p.DefaultPrice.ID,
	}, nil
}

func (u *CatalogUseCase) toCatalogItem(p entities.Product) entities.CatalogItem {
	return entities.CatalogItem{
		ID:       p.ID,
		Name:     p.Name,
		ImageURL: u.firstImage(p.Images),
		Price:    money.FormatBRL(p.DefaultPrice.UnitAmount),
	}
}

func (u *CatalogUseCase) firstImage(images []string) string {
	if len(images) == 0 || strings.TrimSpace(images[0]) == "" {
		return u.placeholderImage
	}
	return images[0]
}
