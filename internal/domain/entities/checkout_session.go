package entities

import "time"

// CheckoutProvider names the hosted checkout backend that created a session.

type CheckoutProvider string

const (
	CheckoutProviderStripe      CheckoutProvider = "stripe"
	CheckoutProviderMercadoPago CheckoutProvider = "mercadopago"
	CheckoutProviderMock        CheckoutProvider = "mock"
)

// CheckoutSession is a provider-hosted checkout created for one price.
//
// Storage model (DynamoDB, optional audit):
//   - PK: id
//
// ClientKey identifies the browser tab that asked for the session; it is the
// key of the duplicate-submission guard.
type CheckoutSession struct {
	ID          string           `json:"id"`
	Provider    CheckoutProvider `json:"provider"`
	PriceID     string           `json:"price_id"`
	ClientKey   string           `json:"client_key"`
	CheckoutURL string           `json:"checkout_url"`
	CreatedAt   time.Time        `json:"created_at"`
}

// CheckoutSummary is what the success page shows after the provider
// redirects the customer back. Paid is false while the provider has not
// confirmed the payment (abandoned checkout, boleto/PIX still pending).
type CheckoutSummary struct {
	SessionID    string
	CustomerName string
	ProductName  string
	ImageURL     string
	Paid         bool
}
