package handlers

import (
	"errors"
	"log"
	"net/http"

	request "webstore_payments/internal/adapter/http/dto/request"
	response "webstore_payments/internal/adapter/http/dto/response"
	"webstore_payments/internal/usecase"
	"webstore_payments/pkg"

	"github.com/gin-gonic/gin"
)

// GatewayHandler exposes the gateway registration descriptor, the admin
// configuration surface and the refund/subscription stubs.

type GatewayHandler struct {
	usecase usecase.IGatewayUseCase
}

func NewGatewayHandler(uc usecase.IGatewayUseCase) *GatewayHandler {
	return &GatewayHandler{usecase: uc}
}

// Describe returns the static gateway registration record.
func (h *GatewayHandler) Describe(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromGatewayDescriptor(h.usecase.Describe()))
}

// GetConfig returns the normalized admin configuration.
func (h *GatewayHandler) GetConfig(c *gin.Context) {
	cfg, err := h.usecase.GetConfig(c.Request.Context())
	if err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}

// UpdateConfig merges the submitted key/value pairs into the stored
// configuration.
func (h *GatewayHandler) UpdateConfig(c *gin.Context) {
	var payload request.GatewayConfigUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cfg, err := h.usecase.UpdateConfig(c.Request.Context(), payload.Values)
	if err != nil {
		log.Printf("[gateway][handler] config update failed err=%v", err)
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[gateway][handler] config updated")

	c.JSON(http.StatusOK, response.FromGatewayConfig(cfg))
}

// Refund always rejects: the upstream gateway has no refund support.
func (h *GatewayHandler) Refund(c *gin.Context) {
	if err := h.usecase.Refund(c.Request.Context(), c.Param("payment_id")); err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// CheckSubscription reports subscription state; always inactive for this
// gateway.
func (h *GatewayHandler) CheckSubscription(c *gin.Context) {
	status, err := h.usecase.CheckSubscription(c.Request.Context(), c.Param("subscription_id"))
	if err != nil {
		appErr := mapGatewayError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, status)
}

func mapGatewayError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGatewayConfig):
		return pkg.NewDomainErrorSimple("INVALID_GATEWAY_CONFIG", "Invalid gateway configuration", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundUnsupported):
		return pkg.NewDomainErrorSimple("REFUND_UNSUPPORTED", "Refunds are not supported", http.StatusNotImplemented)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
