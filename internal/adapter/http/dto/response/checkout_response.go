package response

import (
	"ignite_shop/internal/domain/entities"
	"time"
)

// CheckoutResponse carries the provider-hosted URL the browser navigates to.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkoutUrl" example:"https://checkout.stripe.com/c/pay/cs_test_a1"`
}

// CheckoutSessionResponse is the audit record of a created session.
type CheckoutSessionResponse struct {
	ID          string    `json:"id"`
	Provider    string    `json:"provider"`
	PriceID     string    `json:"price_id"`
	CheckoutURL string    `json:"checkout_url"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCheckoutSession(s entities.CheckoutSession) CheckoutResponse {
	return CheckoutResponse{CheckoutURL: s.CheckoutURL}
}

// FromCheckoutSessionRecord leaves the client key out: it identifies a
// browser and is not returned to anyone.
func FromCheckoutSessionRecord(s entities.CheckoutSession) CheckoutSessionResponse {
	return CheckoutSessionResponse{
		ID:          s.ID,
		Provider:    string(s.Provider),
		PriceID:     s.PriceID,
		CheckoutURL: s.CheckoutURL,
		CreatedAt:   s.CreatedAt,
	}
}
