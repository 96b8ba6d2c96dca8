package handlers

import (
	"errors"
	"log"
	"net/http"

	"webstore_payments/internal/usecase"
	"webstore_payments/pkg"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler starts the hosted-checkout flow for a payment intent.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// InitiateCheckout builds the Mercado Pago preference and redirects the payer
// to the hosted checkout. When preference creation fails the payer gets a
// generic failure, never the processor error.
func (h *CheckoutHandler) InitiateCheckout(c *gin.Context) {
	paymentID := c.Param("payment_id")
	log.Printf("[checkout][handler] initiate start payment_id=%s", paymentID)

	result, err := h.usecase.InitiateCheckout(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[checkout][handler] initiate failed payment_id=%s err=%v", paymentID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if result.Failed {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_INIT_FAILED", "Failed to initiate payment", http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] initiate success payment_id=%s", paymentID)

	c.Redirect(http.StatusFound, result.RedirectURL)
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
