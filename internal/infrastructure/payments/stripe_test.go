package payments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stripe/stripe-go/v79/client"
)

const stripeProductJSON = `{
  "id": "prod_NsrAqTZzdGril1",
  "object": "product",
  "active": true,
  "name": "Camiseta Beyond the Limits",
  "description": "Tecido leve",
  "images": ["https://files.stripe.com/a.png"],
  "default_price": {"id": "price_xxx", "object": "price", "unit_amount": 15990, "currency": "brl", "product": "prod_NsrAqTZzdGril1"}
}`

const stripeMissingJSON = `{"error":{"type":"invalid_request_error","code":"resource_missing","message":"No such resource"}}`

func newStripeTestAPI(t *testing.T, handler http.HandlerFunc) *client.API {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	api, err := NewStripeClient("sk_test_123", srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return api
}

func writeStripeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestNewStripeClient_MissingKey(t *testing.T) {
	if _, err := NewStripeClient("", ""); !errors.Is(err, ErrMissingStripeSecretKey) {
		t.Fatalf("expected ErrMissingStripeSecretKey, got %v", err)
	}
}

func TestStripeCatalog_ListProducts(t *testing.T) {
	var query string
	api := newStripeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/products" {
			writeStripeJSON(w, http.StatusNotFound, stripeMissingJSON)
			return
		}
		query = r.URL.RawQuery
		writeStripeJSON(w, http.StatusOK, `{"object":"list","url":"/v1/products","has_more":false,"data":[
			{"id":"prod_1","object":"product","name":"Camiseta","images":["img.png"],"default_price":{"id":"price_1","object":"price","unit_amount":5000,"currency":"brl"}},
			{"id":"prod_2","object":"product","name":"Caneca","images":[],"default_price":null}
		]}`)
	})

	products, err := NewStripeCatalog(api).ListProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(query, "default_price") || !strings.Contains(query, "active=true") {
		t.Fatalf("expected active filter and default_price expansion, got query %q", query)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	first := products[0]
	if first.ID != "prod_1" || first.Images[0] != "img.png" || first.DefaultPrice == nil {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.DefaultPrice.ID != "price_1" || first.DefaultPrice.UnitAmount != 5000 || first.DefaultPrice.ProductName != "Camiseta" {
		t.Fatalf("unexpected default price: %+v", first.DefaultPrice)
	}
	if products[1].DefaultPrice != nil {
		t.Fatalf("expected no default price, got %+v", products[1].DefaultPrice)
	}
}

func TestStripeCatalog_GetProduct(t *testing.T) {
	api := newStripeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/products/prod_NsrAqTZzdGril1":
			writeStripeJSON(w, http.StatusOK, stripeProductJSON)
		case "/v1/products/prod_broken":
			writeStripeJSON(w, http.StatusInternalServerError, `{"error":{"type":"api_error","message":"boom"}}`)
		default:
			writeStripeJSON(w, http.StatusNotFound, stripeMissingJSON)
		}
	})
	catalog := NewStripeCatalog(api)

	p, err := catalog.GetProduct(context.Background(), "prod_NsrAqTZzdGril1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Description != "Tecido leve" || p.DefaultPrice == nil || p.DefaultPrice.UnitAmount != 15990 {
		t.Fatalf("unexpected product: %+v", p)
	}

	missing, err := catalog.GetProduct(context.Background(), "prod_missing")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero product for missing id, got %+v err=%v", missing, err)
	}

	if _, err := catalog.GetProduct(context.Background(), "prod_broken"); err == nil {
		t.Fatalf("expected provider error")
	}
}

func TestStripeCatalog_GetPrice(t *testing.T) {
	api := newStripeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/prices/price_xxx" {
			writeStripeJSON(w, http.StatusNotFound, stripeMissingJSON)
			return
		}
		writeStripeJSON(w, http.StatusOK, `{"id":"price_xxx","object":"price","unit_amount":15990,"currency":"brl",
			"product":{"id":"prod_1","object":"product","name":"Camiseta","images":["a.png"]}}`)
	})
	catalog := NewStripeCatalog(api)

	price, err := catalog.GetPrice(context.Background(), "price_xxx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price.ProductName != "Camiseta" || price.UnitAmount != 15990 || price.Currency != "brl" {
		t.Fatalf("unexpected price: %+v", price)
	}

	missing, err := catalog.GetPrice(context.Background(), "price_missing")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero price for missing id, got %+v err=%v", missing, err)
	}
}

func TestStripeCheckout_CreateCheckoutSession(t *testing.T) {
	var form map[string]string
	api := newStripeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/checkout/sessions" {
			writeStripeJSON(w, http.StatusNotFound, stripeMissingJSON)
			return
		}
		_ = r.ParseForm()
		form = map[string]string{}
		for k := range r.PostForm {
			form[k] = r.PostForm.Get(k)
		}
		if form["line_items[0][price]"] == "price_missing" {
			writeStripeJSON(w, http.StatusBadRequest, stripeMissingJSON)
			return
		}
		writeStripeJSON(w, http.StatusOK, `{"id":"cs_1","object":"checkout.session","url":"https://pay.example/cs_1","created":1700000000}`)
	})
	checkout := NewStripeCheckout(api, "http://localhost:8080/")

	s, err := checkout.CreateCheckoutSession(context.Background(), "price_xxx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ID != "cs_1" || s.CheckoutURL != "https://pay.example/cs_1" || s.Provider != "stripe" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if form["mode"] != "payment" || form["line_items[0][quantity]"] != "1" {
		t.Fatalf("unexpected form: %+v", form)
	}
	if form["success_url"] != "http://localhost:8080/success?session_id={CHECKOUT_SESSION_ID}" || form["cancel_url"] != "http://localhost:8080/" {
		t.Fatalf("unexpected redirect urls: %+v", form)
	}

	missing, err := checkout.CreateCheckoutSession(context.Background(), "price_missing")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero session for missing price, got %+v err=%v", missing, err)
	}
}

func TestStripeCheckout_GetCheckoutSummary(t *testing.T) {
	api := newStripeTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/checkout/sessions/cs_1":
			writeStripeJSON(w, http.StatusOK, `{"id":"cs_1","object":"checkout.session","status":"complete","payment_status":"paid",
				"customer_details":{"name":"Diego Fernandes"},
				"line_items":{"object":"list","has_more":false,"url":"/v1/checkout/sessions/cs_1/line_items","data":[
					{"id":"li_1","object":"item","quantity":1,"price":{"id":"price_1","object":"price","unit_amount":5000,
						"product":{"id":"prod_1","object":"product","name":"Camiseta","images":["a.png"]}}}
				]}}`)
		case "/v1/checkout/sessions/cs_open":
			writeStripeJSON(w, http.StatusOK, `{"id":"cs_open","object":"checkout.session","status":"open","payment_status":"unpaid"}`)
		case "/v1/checkout/sessions/cs_boleto":
			writeStripeJSON(w, http.StatusOK, `{"id":"cs_boleto","object":"checkout.session","status":"complete","payment_status":"unpaid"}`)
		case "/v1/checkout/sessions/cs_free":
			writeStripeJSON(w, http.StatusOK, `{"id":"cs_free","object":"checkout.session","status":"complete","payment_status":"no_payment_required"}`)
		default:
			writeStripeJSON(w, http.StatusNotFound, stripeMissingJSON)
		}
	})
	checkout := NewStripeCheckout(api, "http://localhost:8080")

	summary, err := checkout.GetCheckoutSummary(context.Background(), "cs_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.CustomerName != "Diego Fernandes" || summary.ProductName != "Camiseta" || summary.ImageURL != "a.png" || !summary.Paid {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	for id, wantPaid := range map[string]bool{"cs_open": false, "cs_boleto": false, "cs_free": true} {
		summary, err := checkout.GetCheckoutSummary(context.Background(), id)
		if err != nil || summary.SessionID != id {
			t.Fatalf("%s: unexpected summary %+v err=%v", id, summary, err)
		}
		if summary.Paid != wantPaid {
			t.Fatalf("%s: expected paid=%t, got %t", id, wantPaid, summary.Paid)
		}
	}

	missing, err := checkout.GetCheckoutSummary(context.Background(), "cs_missing")
	if err != nil || missing.SessionID != "" {
		t.Fatalf("expected zero summary, got %+v err=%v", missing, err)
	}
}
