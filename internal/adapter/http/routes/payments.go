package routes

import (
	"webstore_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments      = "/payments"
	PathCheckout      = "/checkout"
	PathWebhooks      = "/webhooks"
	PathGateway       = "/gateway"
	PathSubscriptions = "/subscriptions"
)

func addPaymentRoutes(
	rg *gin.RouterGroup,
	intentHandler *handlers.PaymentIntentHandler,
	checkoutHandler *handlers.CheckoutHandler,
	webhookHandler *handlers.WebhookHandler,
	gatewayHandler *handlers.GatewayHandler,
) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", intentHandler.CreatePaymentIntent)
		payments.GET("/:payment_id", intentHandler.GetPaymentIntent)
		payments.POST("/:payment_id/refund", gatewayHandler.Refund)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.GET("/:payment_id", checkoutHandler.InitiateCheckout)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Mercado Pago may deliver notifications as GET or POST.
		webhooks.GET("/notification", webhookHandler.HandleNotification)
		webhooks.POST("/notification", webhookHandler.HandleNotification)
	}

	gateway := rg.Group(PathGateway)
	{
		gateway.GET("", gatewayHandler.Describe)
		gateway.GET("/config", gatewayHandler.GetConfig)
		gateway.PUT("/config", gatewayHandler.UpdateConfig)
	}

	subscriptions := rg.Group(PathSubscriptions)
	{
		subscriptions.GET("/:subscription_id", gatewayHandler.CheckSubscription)
	}
}
