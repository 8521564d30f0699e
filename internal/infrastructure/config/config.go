// Package config reads the storefront's runtime configuration from the
// environment. A .env file is loaded by godotenv/autoload in main.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CheckoutProviderStripe      = "stripe"
	CheckoutProviderMercadoPago = "mercadopago"

	PageStoreMemory = "memory"
	PageStoreRedis  = "redis"

	CheckoutAuditNone     = "none"
	CheckoutAuditDynamoDB = "dynamodb"
)

// Config holds every knob the service reads at startup.
type Config struct {
	Port    int
	BaseURL string

	StripeSecretKey  string
	StripeBackendURL string

	CheckoutProvider       string
	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	PrerenderProductIDs []string
	CatalogRevalidate   time.Duration
	ProductRevalidate   time.Duration
	RegenerateTimeout   time.Duration
	PlaceholderImageURL string

	PageStore string
	RedisHost string
	RedisPort string

	CheckoutAudit         string
	AWSRegion             string
	DynamoDBEndpoint      string
	CheckoutSessionsTable string
}

// Load collects configuration from environment with defaults.
func Load() Config {
	return Config{
		Port:    atoienv("PORT", 8080),
		BaseURL: getenvDefault("BASE_URL", "http://localhost:8080"),

		StripeSecretKey:  os.Getenv("STRIPE_SECRET_KEY"),
		StripeBackendURL: os.Getenv("STRIPE_BACKEND_URL"),

		CheckoutProvider:       strings.ToLower(getenvDefault("CHECKOUT_PROVIDER", CheckoutProviderStripe)),
		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     isPaymentGatewayMockEnabled(),

		// Product ids belong to one Stripe account, so none are prerendered
		// unless listed; other products are still rendered on first request.
		PrerenderProductIDs: splitList(os.Getenv("PRERENDER_PRODUCT_IDS")),
		CatalogRevalidate:   durenv("CATALOG_REVALIDATE", 2*time.Hour),
		ProductRevalidate:   durenv("PRODUCT_REVALIDATE", time.Hour),
		RegenerateTimeout:   durenv("REGENERATE_TIMEOUT", 30*time.Second),
		PlaceholderImageURL: getenvDefault("PLACEHOLDER_IMAGE_URL", "/assets/placeholder.svg"),

		PageStore: strings.ToLower(getenvDefault("PAGE_STORE", PageStoreMemory)),
		RedisHost: getenvDefault("REDIS_HOST", "localhost"),
		RedisPort: getenvDefault("REDIS_PORT", "6379"),

		CheckoutAudit:         strings.ToLower(getenvDefault("CHECKOUT_AUDIT", CheckoutAuditNone)),
		AWSRegion:             getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:      os.Getenv("DYNAMODB_ENDPOINT"),
		CheckoutSessionsTable: getenvDefault("CHECKOUT_SESSIONS_TABLE", "checkout_sessions"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenvDefault(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// durenv accepts Go durations ("90m") or plain seconds ("7200").
func durenv(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if sec, err := strconv.Atoi(v); err == nil && sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return def
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
