package routes

import (
	"context"
	_ "ignite_shop/docs" // This will be auto-generated
	"ignite_shop/internal/adapter/http/handlers"
	"ignite_shop/internal/adapter/http/middleware"
	"ignite_shop/internal/adapter/http/views"
	"ignite_shop/internal/adapter/pagecache"
	"ignite_shop/internal/adapter/persistence/repository"
	"ignite_shop/internal/infrastructure/config"
	"ignite_shop/internal/infrastructure/database"
	"ignite_shop/internal/infrastructure/payments"
	"ignite_shop/internal/usecase"
	"ignite_shop/internal/usecase/interfaces"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/client"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg := config.Load()
	ctx := context.Background()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(ctx, cfg)

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) {
	stripeAPI, err := payments.NewStripeClient(cfg.StripeSecretKey, cfg.StripeBackendURL)
	if err != nil {
		log.Fatalf("Stripe client not configured: %v", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse page templates: %v", err)
	}

	catalog := payments.NewStripeCatalog(stripeAPI)
	catalogUseCase := usecase.NewCatalogUseCase(catalog, cfg.PlaceholderImageURL)
	checkoutUseCase := usecase.NewCheckoutUseCase(newCheckoutProvider(cfg, catalog, stripeAPI), newCheckoutSessionRepository(ctx, cfg))

	pages := pagecache.New(newPageStore(ctx, cfg), cfg.RegenerateTimeout)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase, renderer, pages, handlers.PageWindows{
		Catalog: cfg.CatalogRevalidate,
		Product: cfg.ProductRevalidate,
	})
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, renderer)

	// Pages listed here must exist before the first request is served.
	log.Printf("[startup] prerendering catalog and products=%v", cfg.PrerenderProductIDs)
	if err := catalogHandler.Prerender(ctx, cfg.PrerenderProductIDs); err != nil {
		log.Fatalf("Failed to prerender pages (check PRERENDER_PRODUCT_IDS belongs to this Stripe account): %v", err)
	}

	addPageRoutes(router, catalogHandler, checkoutHandler)

	api := router.Group(PathAPI)
	addPingRoutes(api)
	addCheckoutRoutes(api, checkoutHandler)
}

func newCheckoutProvider(cfg config.Config, catalog interfaces.IProductCatalog, stripeAPI *client.API) interfaces.ICheckoutProvider {
	if cfg.PaymentGatewayMock {
		return payments.NewMockCheckout(cfg.BaseURL)
	}

	switch cfg.CheckoutProvider {
	case config.CheckoutProviderMercadoPago:
		mp, err := payments.NewMercadoPagoCheckout(cfg.MercadoPagoAccessToken, catalog, cfg.BaseURL)
		if err != nil {
			log.Printf("Mercado Pago checkout not configured: %v", err)
			return nil
		}
		return mp
	case config.CheckoutProviderStripe:
		return payments.NewStripeCheckout(stripeAPI, cfg.BaseURL)
	default:
		log.Printf("Unknown CHECKOUT_PROVIDER=%q; checkout disabled", cfg.CheckoutProvider)
		return nil
	}
}

func newCheckoutSessionRepository(ctx context.Context, cfg config.Config) interfaces.ICheckoutSessionRepository {
	if cfg.CheckoutAudit != config.CheckoutAuditDynamoDB {
		return nil
	}
	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		log.Printf("Checkout audit disabled; DynamoDB not configured: %v", err)
		return nil
	}
	return repository.NewCheckoutSessionDynamoRepository(ddb, cfg.CheckoutSessionsTable)
}

func newPageStore(ctx context.Context, cfg config.Config) pagecache.Store {
	if cfg.PageStore != config.PageStoreRedis {
		return pagecache.NewMemoryStore()
	}
	rdb, err := database.ConnectRedis(ctx, cfg.RedisHost, cfg.RedisPort)
	if err != nil {
		log.Fatalf("Failed to connect to Redis page store: %v", err)
	}
	return pagecache.NewRedisStore(rdb)
}

func setMiddlewares() {
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(middleware.ClientKey())
}
