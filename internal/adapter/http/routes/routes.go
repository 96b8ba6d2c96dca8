package routes

import (
	"log"
	"os"
	"strconv"

	_ "webstore_payments/docs" // This will be auto-generated
	"webstore_payments/internal/adapter/http/handlers"
	repository2 "webstore_payments/internal/adapter/persistence/repository"
	"webstore_payments/internal/infrastructure/database"
	"webstore_payments/internal/infrastructure/payments"
	"webstore_payments/internal/usecase"

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
	ddb := database.ConnectDynamoDB()

	intentRepo := repository2.NewPaymentIntentDynamoRepository(ddb)
	configRepo := repository2.NewGatewayConfigDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	gateway := payments.NewMercadoPagoGateway()

	secretUseCase := usecase.NewSecretUseCase(settingsRepo)
	intentUseCase := usecase.NewPaymentIntentUseCase(intentRepo)
	checkoutUseCase := usecase.NewCheckoutUseCase(intentRepo, configRepo, secretUseCase, gateway, usecase.CheckoutOptions{
		AppName:       getenvDefault("APP_NAME", "webstore"),
		PublicBaseURL: getenvDefault("PUBLIC_BASE_URL", "http://localhost:8080"),
	})
	webhookUseCase := usecase.NewWebhookUseCase(intentRepo, configRepo, secretUseCase, gateway)
	gatewayUseCase := usecase.NewGatewayUseCase(configRepo, secretUseCase)

	intentHandler := handlers.NewPaymentIntentHandler(intentUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	gatewayHandler := handlers.NewGatewayHandler(gatewayUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, intentHandler, checkoutHandler, webhookHandler, gatewayHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
