package routes

import (
	"ignite_shop/internal/adapter/http/handlers"
	"ignite_shop/internal/adapter/http/views"

	"github.com/gin-gonic/gin"
)

const (
	PathAPI      = "/api"
	PathCheckout = "/checkout"
	PathAssets   = "/assets"
)

func addPageRoutes(r *gin.Engine, catalogHandler *handlers.CatalogHandler, checkoutHandler *handlers.CheckoutHandler) {
	r.GET("/", catalogHandler.Home)
	r.GET("/product/:id", catalogHandler.Product)
	r.GET("/success", checkoutHandler.Success)
	r.StaticFS(PathAssets, views.Assets())
}

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler) {
	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.CreateCheckoutSession)
		checkout.GET("/sessions/:id", checkoutHandler.GetCheckoutSession)
	}
}
