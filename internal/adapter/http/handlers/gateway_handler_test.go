package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"webstore_payments/internal/adapter/http/handlers/mocks"
	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newGatewayRouter(t *testing.T) (*mocks.MockIGatewayUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIGatewayUseCase(ctrl)
	handler := NewGatewayHandler(uc)
	router := gin.New()
	router.GET("/v1/gateway", handler.Describe)
	router.GET("/v1/gateway/config", handler.GetConfig)
	router.PUT("/v1/gateway/config", handler.UpdateConfig)
	router.POST("/v1/payments/:payment_id/refund", handler.Refund)
	router.GET("/v1/subscriptions/:subscription_id", handler.CheckSubscription)
	return uc, router
}

func TestGatewayHandler_Describe(t *testing.T) {
	uc, router := newGatewayRouter(t)
	uc.EXPECT().Describe().Return(entities.GatewayDescriptor{
		Driver:        "mercadopago",
		Type:          "once",
		Endpoint:      "mercadopago",
		RefundSupport: false,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/gateway", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["driver"] != "mercadopago" || resp["type"] != "once" {
		t.Fatalf("unexpected descriptor: %v", resp)
	}
	if resp["refund_support"] != false {
		t.Fatalf("expected refund_support false, got %v", resp["refund_support"])
	}
}

func TestGatewayHandler_Config(t *testing.T) {
	t.Run("get hides the access token", func(t *testing.T) {
		uc, router := newGatewayRouter(t)
		uc.EXPECT().GetConfig(gomock.Any()).Return(entities.GatewayConfig{
			AccessToken:   "TEST-token",
			Currency:      "ARS",
			SandboxMode:   true,
			USDToCurrency: 915,
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/gateway/config", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if strings.Contains(w.Body.String(), "TEST-token") {
			t.Fatal("access token leaked in response")
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["access_token_set"] != true {
			t.Fatalf("expected access_token_set true, got %v", resp["access_token_set"])
		}
	})

	t.Run("update rejects invalid values", func(t *testing.T) {
		uc, router := newGatewayRouter(t)
		uc.EXPECT().UpdateConfig(gomock.Any(), map[string]string{"sandox_mode": "maybe"}).
			Return(entities.GatewayConfig{}, usecase.ErrInvalidGatewayConfig)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/v1/gateway/config", strings.NewReader(`{"values":{"sandox_mode":"maybe"}}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestGatewayHandler_Refund(t *testing.T) {
	uc, router := newGatewayRouter(t)
	uc.EXPECT().Refund(gomock.Any(), "pay-1").Return(usecase.ErrRefundUnsupported)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/payments/pay-1/refund", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotImplemented {
		t.Fatalf("expected 501, got %d", w.Code)
	}
}

func TestGatewayHandler_CheckSubscription(t *testing.T) {
	uc, router := newGatewayRouter(t)
	uc.EXPECT().CheckSubscription(gomock.Any(), "sub-1").
		Return(usecase.SubscriptionStatus{SubscriptionID: "sub-1", Active: false}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/subscriptions/sub-1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["active"] != false {
		t.Fatalf("expected inactive subscription, got %v", resp)
	}
}
