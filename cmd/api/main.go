package main

import (
	_ "efipay-shopify-bridge/docs"
	"efipay-shopify-bridge/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EfiPay Shopify Bridge API
// @version         1.0
// @description     Bridges EfiPay hosted payments and Shopify orders: creates payment links and reconciles webhook payment outcomes into order state.

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
