package payments

import (
	"context"
	"log"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/usecase/interfaces"
)

// MockCheckout stands in for a real provider when PAYMENT_GATEWAY_MOCK is on.
// Sessions redirect straight to the local success page.
type MockCheckout struct {
	baseURL string
}

var _ interfaces.ICheckoutProvider = (*MockCheckout)(nil)

func NewMockCheckout(baseURL string) *MockCheckout {
	log.Printf("[mock][checkout] mock mode enabled")
	return &MockCheckout{baseURL: strings.TrimRight(baseURL, "/")}
}

func (g *MockCheckout) Name() entities.CheckoutProvider {
	return entities.CheckoutProviderMock
}

func (g *MockCheckout) CreateCheckoutSession(_ context.Context, priceID string) (entities.CheckoutSession, error) {
	id := "cs_mock_" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	log.Printf("[mock][checkout] create success session_id=%s price_id=%s", id, priceID)
	return entities.CheckoutSession{
		ID:          id,
		Provider:    entities.CheckoutProviderMock,
		PriceID:     priceID,
		CheckoutURL: g.baseURL + "/success?session_id=" + url.QueryEscape(id),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (g *MockCheckout) GetCheckoutSummary(_ context.Context, sessionID string) (entities.CheckoutSummary, error) {
	if !strings.HasPrefix(sessionID, "cs_mock_") {
		return entities.CheckoutSummary{}, nil
	}
	return entities.CheckoutSummary{SessionID: sessionID, CustomerName: "Cliente de teste", Paid: true}, nil
}
