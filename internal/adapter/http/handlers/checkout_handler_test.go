package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"webstore_payments/internal/adapter/http/handlers/mocks"
	"webstore_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newCheckoutRouter(t *testing.T) (*mocks.MockICheckoutUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockICheckoutUseCase(ctrl)
	router := gin.New()
	router.GET("/v1/checkout/:payment_id", NewCheckoutHandler(uc).InitiateCheckout)
	return uc, router
}

func TestCheckoutHandler_InitiateCheckout(t *testing.T) {
	t.Run("redirects to the hosted checkout", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().InitiateCheckout(gomock.Any(), "pay-1").
			Return(usecase.CheckoutResult{RedirectURL: "https://mp/init", PreferenceID: "pref-1"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/pay-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "https://mp/init" {
			t.Fatalf("unexpected redirect target: %s", loc)
		}
	})

	t.Run("preference failure answers 502", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().InitiateCheckout(gomock.Any(), "pay-1").
			Return(usecase.CheckoutResult{Failed: true, Reason: "preference creation failed"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/pay-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("unknown payment answers 404", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().InitiateCheckout(gomock.Any(), "pay-missing").
			Return(usecase.CheckoutResult{}, usecase.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/pay-missing", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unconfigured gateway answers 503", func(t *testing.T) {
		uc, router := newCheckoutRouter(t)
		uc.EXPECT().InitiateCheckout(gomock.Any(), "pay-1").
			Return(usecase.CheckoutResult{}, usecase.ErrGatewayNotConfigured)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/checkout/pay-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
