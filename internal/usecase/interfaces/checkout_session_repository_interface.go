package interfaces

import (
	"context"
	"ignite_shop/internal/domain/entities"
)

// ICheckoutSessionRepository abstracts the checkout session audit trail.

//go:generate mockgen -source=checkout_session_repository_interface.go -destination=mocks/checkout_session_repository_interface_mock.go -package=mock_interfaces
type ICheckoutSessionRepository interface {
	Create(ctx context.Context, s entities.CheckoutSession) (entities.CheckoutSession, error)
	GetByID(ctx context.Context, id string) (entities.CheckoutSession, error)
}
