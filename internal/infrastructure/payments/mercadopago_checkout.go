package payments

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ignite_shop/internal/domain/entities"
	"ignite_shop/internal/domain/money"
	"ignite_shop/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

const mercadoPagoPaymentApproved = "approved"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// MercadoPagoCheckout creates Mercado Pago Checkout Pro preferences.
//
// Mercado Pago does not know the store's catalog, so the price is resolved
// through the product catalog first and the preference is built from it
// (title, unit price in reais, BRL).
type MercadoPagoCheckout struct {
	client   preference.Client
	payments payment.Client
	catalog  interfaces.IProductCatalog
	baseURL  string
	sandbox  bool
}

var _ interfaces.ICheckoutProvider = (*MercadoPagoCheckout)(nil)

func NewMercadoPagoCheckout(accessToken string, catalog interfaces.IProductCatalog, baseURL string) (*MercadoPagoCheckout, error) {
	if accessToken == "" {
		log.Printf("[mercadopago][checkout] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[mercadopago][checkout] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[mercadopago][checkout] Mercado Pago client initialized")

	// Test credentials only work against the sandbox checkout page.
	sandbox := strings.HasPrefix(strings.TrimSpace(accessToken), "TEST-")
	return newMercadoPagoCheckout(preference.NewClient(cfg), payment.NewClient(cfg), catalog, baseURL, sandbox), nil
}

func newMercadoPagoCheckout(client preference.Client, payments payment.Client, catalog interfaces.IProductCatalog, baseURL string, sandbox bool) *MercadoPagoCheckout {
	return &MercadoPagoCheckout{
		client:   client,
		payments: payments,
		catalog:  catalog,
		baseURL:  strings.TrimRight(baseURL, "/"),
		sandbox:  sandbox,
	}
}

func (g *MercadoPagoCheckout) Name() entities.CheckoutProvider {
	return entities.CheckoutProviderMercadoPago
}

func (g *MercadoPagoCheckout) CreateCheckoutSession(ctx context.Context, priceID string) (entities.CheckoutSession, error) {
	log.Printf("[mercadopago][checkout] create start price_id=%s", priceID)

	price, err := g.catalog.GetPrice(ctx, priceID)
	if err != nil {
		return entities.CheckoutSession{}, err
	}
	if price.ID == "" {
		log.Printf("[mercadopago][checkout] price not found price_id=%s", priceID)
		return entities.CheckoutSession{}, nil
	}

	item := preference.ItemRequest{
		ID:         price.ID,
		Title:      price.ProductName,
		Quantity:   1,
		UnitPrice:  money.MajorUnits(price.UnitAmount),
		CurrencyID: "BRL",
	}
	if len(price.ProductImages) > 0 {
		item.PictureURL = price.ProductImages[0]
	}

	req := preference.Request{
		Items: []preference.ItemRequest{item},
		BackURLs: &preference.BackURLsRequest{
			Success: g.baseURL + "/success",
			Failure: g.baseURL + "/",
			Pending: g.baseURL + "/",
		},
		AutoReturn: "approved",
		// Unique per preference so its payments can be looked up later.
		ExternalReference: "ignite-shop:" + uuid.NewString(),
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[mercadopago][checkout] sdk create failed price_id=%s err=%v", priceID, err)
		return entities.CheckoutSession{}, err
	}

	checkoutURL := resp.InitPoint
	if g.sandbox && resp.SandboxInitPoint != "" {
		checkoutURL = resp.SandboxInitPoint
	}
	log.Printf("[mercadopago][checkout] create success preference_id=%s sandbox=%t", resp.ID, g.sandbox)

	return entities.CheckoutSession{
		ID:          resp.ID,
		Provider:    entities.CheckoutProviderMercadoPago,
		PriceID:     priceID,
		CheckoutURL: checkoutURL,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (g *MercadoPagoCheckout) GetCheckoutSummary(ctx context.Context, sessionID string) (entities.CheckoutSummary, error) {
	resp, err := g.client.Get(ctx, sessionID)
	if err != nil {
		if isMercadoPagoNotFound(err) {
			return entities.CheckoutSummary{}, nil
		}
		log.Printf("[mercadopago][checkout] get preference failed preference_id=%s err=%v", sessionID, err)
		return entities.CheckoutSummary{}, err
	}

	summary := entities.CheckoutSummary{
		SessionID:    resp.ID,
		CustomerName: strings.TrimSpace(resp.Payer.Name + " " + resp.Payer.Surname),
	}
	if len(resp.Items) > 0 {
		summary.ProductName = resp.Items[0].Title
		summary.ImageURL = resp.Items[0].PictureURL
	}

	// The return URL's collection_status is client-supplied; ask the API.
	paid, err := g.hasApprovedPayment(ctx, resp.ExternalReference)
	if err != nil {
		log.Printf("[mercadopago][checkout] payment search failed preference_id=%s err=%v", sessionID, err)
		return entities.CheckoutSummary{}, err
	}
	summary.Paid = paid
	return summary, nil
}

func (g *MercadoPagoCheckout) hasApprovedPayment(ctx context.Context, externalReference string) (bool, error) {
	if externalReference == "" {
		return false, nil
	}
	res, err := g.payments.Search(ctx, payment.SearchRequest{
		Filters: map[string]string{"external_reference": externalReference},
	})
	if err != nil {
		return false, err
	}
	for _, p := range res.Results {
		if p.Status == mercadoPagoPaymentApproved {
			return true, nil
		}
	}
	return false, nil
}

func isMercadoPagoNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "not found")
}
