package main

import (
	_ "ignite_shop/docs"
	"ignite_shop/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Ignite Shop API
// @version         1.0
// @description     Storefront backed by Stripe: server-rendered catalog and product pages plus the checkout API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
