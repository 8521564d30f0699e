package payments

import (
	"context"
	"log"
	"strings"
	"time"

	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase/interfaces"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

// StripeCheckout creates Stripe Checkout sessions (hosted payment page) for a
// single price, quantity one.
type StripeCheckout struct {
	api     *client.API
	baseURL string
}

var _ interfaces.ICheckoutProvider = (*StripeCheckout)(nil)

func NewStripeCheckout(api *client.API, baseURL string) *StripeCheckout {
	return &StripeCheckout{api: api, baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *StripeCheckout) Name() entities.CheckoutProvider {
	return entities.CheckoutProviderStripe
}

func (g *StripeCheckout) CreateCheckoutSession(ctx context.Context, priceID string) (entities.CheckoutSession, error) {
	log.Printf("[stripe][checkout] create start price_id=%s", priceID)
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(g.baseURL + "/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(g.baseURL + "/"),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(priceID), Quantity: stripe.Int64(1)},
		},
	}
	params.Context = ctx

	s, err := g.api.CheckoutSessions.New(params)
	if err != nil {
		if isStripeResourceMissing(err) {
			log.Printf("[stripe][checkout] price not found price_id=%s", priceID)
			return entities.CheckoutSession{}, nil
		}
		log.Printf("[stripe][checkout] create failed price_id=%s err=%v", priceID, err)
		return entities.CheckoutSession{}, err
	}
	log.Printf("[stripe][checkout] create success session_id=%s", s.ID)

	createdAt := time.Now().UTC()
	if s.Created > 0 {
		createdAt = time.Unix(s.Created, 0).UTC()
	}
	return entities.CheckoutSession{
		ID:          s.ID,
		Provider:    entities.CheckoutProviderStripe,
		PriceID:     priceID,
		CheckoutURL: s.URL,
		CreatedAt:   createdAt,
	}, nil
}

func (g *StripeCheckout) GetCheckoutSummary(ctx context.Context, sessionID string) (entities.CheckoutSummary, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items.data.price.product")

	s, err := g.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		if isStripeResourceMissing(err) {
			return entities.CheckoutSummary{}, nil
		}
		log.Printf("[stripe][checkout] get session failed session_id=%s err=%v", sessionID, err)
		return entities.CheckoutSummary{}, err
	}

	summary := entities.CheckoutSummary{SessionID: s.ID, Paid: isStripeSessionPaid(s)}
	if s.CustomerDetails != nil {
		summary.CustomerName = s.CustomerDetails.Name
	}
	if s.LineItems != nil && len(s.LineItems.Data) > 0 {
		if price := s.LineItems.Data[0].Price; price != nil && price.Product != nil {
			summary.ProductName = price.Product.Name
			if len(price.Product.Images) > 0 {
				summary.ImageURL = price.Product.Images[0]
			}
		}
	}
	return summary, nil
}

// Async methods (boleto) return through success_url before the money arrives.
func isStripeSessionPaid(s *stripe.CheckoutSession) bool {
	switch s.PaymentStatus {
	case stripe.CheckoutSessionPaymentStatusPaid, stripe.CheckoutSessionPaymentStatusNoPaymentRequired:
		return true
	}
	return false
}
