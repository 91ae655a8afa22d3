package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "efipay-shopify-bridge/docs" // This will be auto-generated
	"efipay-shopify-bridge/internal/adapter/http/handlers"
	"efipay-shopify-bridge/internal/adapter/persistence/repository"
	"efipay-shopify-bridge/internal/infrastructure/database"
	"efipay-shopify-bridge/internal/infrastructure/payments"
	"efipay-shopify-bridge/internal/infrastructure/shopify"
	"efipay-shopify-bridge/internal/normalizer"
	"efipay-shopify-bridge/internal/usecase"
	"efipay-shopify-bridge/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	var orderSystem interfaces.IOrderSystem
	shop, err := shopify.NewOrderSystemFromEnv()
	if err != nil {
		log.Printf("Shopify order system not configured: %v", err)
	} else {
		orderSystem = shop
	}

	var ledger interfaces.IProcessedEventStore = repository.NoopProcessedEventStore{}
	if table := repository.LedgerTableFromEnv(); table != "" {
		ledger = repository.NewProcessedEventDynamoRepository(database.ConnectDynamoDB(), table)
		log.Printf("Processed-event ledger enabled table=%s", table)
	}

	var linkGateway interfaces.IPaymentLinkGateway
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_LINK_PROVIDER"))) {
	case "mercadopago":
		mp, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
		if err != nil {
			log.Printf("Mercado Pago gateway not configured: %v", err)
		} else {
			linkGateway = mp
		}
	default:
		efi, err := payments.NewEfiPayGatewayFromEnv()
		if err != nil {
			log.Printf("EfiPay gateway not configured: %v", err)
		} else {
			linkGateway = efi
		}
	}

	reconcileUseCase := usecase.NewWebhookReconcileUseCase(orderSystem, ledger, usecase.ReconcilerConfigFromEnv())
	linkUseCase := usecase.NewPaymentLinkUseCase(linkGateway)

	webhookHandler := handlers.NewWebhookHandler(normalizer.FromEnv(), reconcileUseCase)
	linkHandler := handlers.NewPaymentLinkHandler(linkUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBridgeRoutes(v1, webhookHandler, linkHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))

	// The storefront calls the link endpoint cross-origin; the webhook is
	// server-to-server and unaffected.
	corsCfg := cors.DefaultConfig()
	if origin := strings.TrimSpace(os.Getenv("STOREFRONT_ORIGIN")); origin != "" {
		corsCfg.AllowOrigins = []string{origin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"POST", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsCfg))

	// Both endpoints accept POST only.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.Header("Allow", "POST")
		c.JSON(405, gin.H{"error": "method not allowed"})
	})
}
