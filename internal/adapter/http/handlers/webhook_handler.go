package handlers

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	request "webstore_payments/internal/adapter/http/dto/request"
	"webstore_payments/internal/usecase"
	"webstore_payments/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives Mercado Pago payment notifications.
//
// Validation rejections answer 400 with {"error": "<reason>"} using the exact
// reason strings the processor integration documents. Lookup failures are
// deliberately hidden from the processor: it sees a success response and the
// payment stays pending for out-of-band reconciliation.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// HandleNotification validates one inbound notification and completes the
// matching payment intent.
func (h *WebhookHandler) HandleNotification(c *gin.Context) {
	raw := rawNotification(c)

	var payload request.WebhookNotificationRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification"})
		return
	}

	result, err := h.usecase.HandleNotification(c.Request.Context(), payload.ToEntity(raw))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidActionType),
			errors.Is(err, usecase.ErrNotLiveMode),
			errors.Is(err, usecase.ErrInvalidWebhookSecret):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrPaymentNotFound):
			appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		default:
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok", "outcome": string(result.Outcome)})
}

// rawNotification captures the notification exactly as delivered, query
// string first and body as fallback, for receipt and forensic logging. The
// body is restored so binding can still read it.
func rawNotification(c *gin.Context) string {
	if raw := c.Request.URL.RawQuery; raw != "" {
		return raw
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))
	return string(body)
}
