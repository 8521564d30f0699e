package payments

import (
	"errors"
	"log"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")

// NewStripeClient builds the one Stripe API client the process uses.
//
// Network retries are disabled: every provider call is a single attempt and
// failures surface to the caller. backendURL overrides the API host (stripe-mock
// or tests); leave it empty for api.stripe.com.
func NewStripeClient(secretKey, backendURL string) (*client.API, error) {
	if secretKey == "" {
		log.Printf("[stripe][client] missing STRIPE_SECRET_KEY")
		return nil, ErrMissingStripeSecretKey
	}

	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelWarn},
	}
	if backendURL != "" {
		cfg.URL = stripe.String(backendURL)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	}
	log.Printf("[stripe][client] Stripe client initialized custom_backend=%t", backendURL != "")
	return client.New(secretKey, backends), nil
}

func isStripeResourceMissing(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound
}
