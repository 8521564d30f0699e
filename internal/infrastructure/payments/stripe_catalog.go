package payments

import (
	"context"
	"log"

	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeCatalog reads products and prices from Stripe.
type StripeCatalog struct {
	api *client.API
}

var _ interfaces.IProductCatalog = (*StripeCatalog)(nil)

func NewStripeCatalog(api *client.API) *StripeCatalog {
	return &StripeCatalog{api: api}
}

// ListProducts returns active products with their default price expanded, in
// the order Stripe returns them. The SDK iterator follows pagination.
func (c *StripeCatalog) ListProducts(ctx context.Context) ([]entities.Product, error) {
	params := &stripe.ProductListParams{Active: stripe.Bool(true)}
	params.Context = ctx
	params.AddExpand("data.default_price")

	var products []entities.Product
	it := c.api.Products.List(params)
	for it.Next() {
		products = append(products, toProduct(it.Product()))
	}
	if err := it.Err(); err != nil {
		log.Printf("[stripe][catalog] list products failed err=%v", err)
		return nil, err
	}
	log.Printf("[stripe][catalog] list products success count=%d", len(products))
	return products, nil
}

func (c *StripeCatalog) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	params := &stripe.ProductParams{}
	params.Context = ctx
	params.AddExpand("default_price")

	p, err := c.api.Products.Get(id, params)
	if err != nil {
		if isStripeResourceMissing(err) {
			log.Printf("[stripe][catalog] product not found product_id=%s", id)
			return entities.Product{}, nil
		}
		log.Printf("[stripe][catalog] get product failed product_id=%s err=%v", id, err)
		return entities.Product{}, err
	}
	return toProduct(p), nil
}

func (c *StripeCatalog) GetPrice(ctx context.Context, id string) (entities.Price, error) {
	params := &stripe.PriceParams{}
	params.Context = ctx
	params.AddExpand("product")

	p, err := c.api.Prices.Get(id, params)
	if err != nil {
		if isStripeResourceMissing(err) {
			log.Printf("[stripe][catalog] price not found price_id=%s", id)
			return entities.Price{}, nil
		}
		log.Printf("[stripe][catalog] get price failed price_id=%s err=%v", id, err)
		return entities.Price{}, err
	}
	return toPrice(p), nil
}

func toProduct(p *stripe.Product) entities.Product {
	if p == nil {
		return entities.Product{}
	}
	out := entities.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Images:      p.Images,
	}
	// An unexpanded default price only carries its ID and no amount.
	if p.DefaultPrice != nil && p.DefaultPrice.ID != "" {
		price := toPrice(p.DefaultPrice)
		price.ProductID = p.ID
		price.ProductName = p.Name
		price.ProductImages = p.Images
		out.DefaultPrice = &price
	}
	return out
}

func toPrice(p *stripe.Price) entities.Price {
	if p == nil {
		return entities.Price{}
	}
	out := entities.Price{
		ID:         p.ID,
		UnitAmount: p.UnitAmount,
		Currency:   string(p.Currency),
	}
	if p.Product != nil {
		out.ProductID = p.Product.ID
		out.ProductName = p.Product.Name
		out.ProductImages = p.Product.Images
	}
	return out
}
