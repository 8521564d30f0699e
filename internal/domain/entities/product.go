package entities

// Price is the provider price record used for display and checkout.
//
// Monetary representation:
//   - UnitAmount is in minor units (centavos); display divides by 100.
//   - ProductName/ProductImages are only filled when the price was fetched
//     with its product expanded.
type Price struct {
	ID            string
	UnitAmount    int64
	Currency      string
	ProductID     string
	ProductName   string
	ProductImages []string
}

// Product is the provider product as returned by the catalog adapter.
// DefaultPrice is nil when the provider has no default price for it.
type Product struct {
	ID           string
	Name         string
	Description  string
	Images       []string
	DefaultPrice *Price
}

// CatalogItem is the display record rendered on the catalog page.
type CatalogItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Price    string `json:"price"`
}

// ProductDetail is the display record rendered on the product page.
type ProductDetail struct {
	CatalogItem
	Description    string `json:"description"`
	DefaultPriceID string `json:"defaultPriceId"`
}
