package interfaces

import (
	"context"
	"ignite_shop/internal/domain/entities"
)

// ICheckoutProvider abstracts hosted checkout backends (Stripe Checkout,
// Mercado Pago preferences).
//
// CreateCheckoutSession returns a zero-value session and a nil error when the
// price does not exist. GetCheckoutSummary does the same for unknown sessions.
//
//go:generate mockgen -source=checkout_provider_interface.go -destination=mocks/checkout_provider_interface_mock.go -package=mock_interfaces
type ICheckoutProvider interface {
	Name() entities.CheckoutProvider
	CreateCheckoutSession(ctx context.Context, priceID string) (entities.CheckoutSession, error)
	GetCheckoutSummary(ctx context.Context, sessionID string) (entities.CheckoutSummary, error)
}
