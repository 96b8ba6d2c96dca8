package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"webstore_payments/internal/adapter/http/handlers/mocks"
	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPaymentIntentRouter(t *testing.T) (*mocks.MockIPaymentIntentUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
	handler := NewPaymentIntentHandler(uc)
	router := gin.New()
	router.POST("/v1/payments", handler.CreatePaymentIntent)
	router.GET("/v1/payments/:payment_id", handler.GetPaymentIntent)
	return uc, router
}

func TestPaymentIntentHandler_CreatePaymentIntent(t *testing.T) {
	t.Run("creates and answers 201", func(t *testing.T) {
		uc, router := newPaymentIntentRouter(t)
		uc.EXPECT().Create(gomock.Any(), usecase.PaymentIntentCommand{
			Amount:       10,
			Description:  "Gold membership",
			PayerName:    "Ana",
			PayerSurname: "Silva",
			PayerEmail:   "ana@example.com",
		}).Return(entities.PaymentIntent{
			ID:        "pay-1",
			Amount:    10,
			Status:    entities.PaymentIntentStatusPending,
			CreatedAt: time.Now().UTC(),
		}, nil)

		body := `{"amount":10,"description":"Gold membership","payer":{"name":"Ana","surname":"Silva","email":"ana@example.com"}}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "pay-1" {
			t.Fatalf("unexpected payment id: %v", resp["id"])
		}
		if resp["status"] != "pending" {
			t.Fatalf("unexpected status: %v", resp["status"])
		}
	})

	t.Run("malformed payload answers 400", func(t *testing.T) {
		_, router := newPaymentIntentRouter(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/payments", strings.NewReader(`{"amount":"ten"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestPaymentIntentHandler_GetPaymentIntent(t *testing.T) {
	t.Run("returns the intent", func(t *testing.T) {
		uc, router := newPaymentIntentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.PaymentIntent{
			ID:     "pay-1",
			Amount: 10,
			Status: entities.PaymentIntentStatusCompleted,
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown intent answers 404", func(t *testing.T) {
		uc, router := newPaymentIntentRouter(t)
		uc.EXPECT().GetByID(gomock.Any(), "pay-missing").Return(entities.PaymentIntent{}, usecase.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/payments/pay-missing", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
