package routes

import (
	"efipay-shopify-bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWebhooks     = "/webhooks"
	PathPaymentLinks = "/payment-links"
)

func addBridgeRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler, linkHandler *handlers.PaymentLinkHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		// EfiPay posts payment notifications here (result_urls.webhook).
		webhooks.POST("/efipay", webhookHandler.HandleEfiPayEvent)
	}

	links := rg.Group(PathPaymentLinks)
	{
		// Called by the storefront checkout script.
		links.POST("", linkHandler.CreatePaymentLink)
	}
}
