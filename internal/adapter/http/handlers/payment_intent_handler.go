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

var errInvalidIntentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)

// PaymentIntentHandler handles HTTP requests for payment intents.

type PaymentIntentHandler struct {
	usecase usecase.IPaymentIntentUseCase
}

func NewPaymentIntentHandler(uc usecase.IPaymentIntentUseCase) *PaymentIntentHandler {
	return &PaymentIntentHandler{usecase: uc}
}

// CreatePaymentIntent opens a pending payment intent for a pending checkout.
func (h *PaymentIntentHandler) CreatePaymentIntent(c *gin.Context) {
	var payload request.PaymentIntentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntentPayload.HTTPStatus, errInvalidIntentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		log.Printf("[payment][handler] create failed err=%v", err)
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success payment_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromPaymentIntent(created))
}

// GetPaymentIntent returns one payment intent by id.
func (h *PaymentIntentHandler) GetPaymentIntent(c *gin.Context) {
	paymentID := c.Param("payment_id")

	p, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		appErr := mapPaymentIntentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentIntent(p))
}

func mapPaymentIntentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPayerEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
