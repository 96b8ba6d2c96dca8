package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"webstore_payments/internal/adapter/http/handlers/mocks"
	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newWebhookRouter(t *testing.T) (*mocks.MockIWebhookUseCase, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	uc := mocks.NewMockIWebhookUseCase(ctrl)
	router := gin.New()
	handler := NewWebhookHandler(uc)
	router.GET("/v1/webhooks/notification", handler.HandleNotification)
	router.POST("/v1/webhooks/notification", handler.HandleNotification)
	return uc, router
}

func TestWebhookHandler_HandleNotification(t *testing.T) {
	t.Run("valid notification answers ok", func(t *testing.T) {
		uc, router := newWebhookRouter(t)

		var received entities.WebhookNotification
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, n entities.WebhookNotification) (usecase.WebhookResult, error) {
				received = n
				return usecase.WebhookResult{Outcome: usecase.OutcomeCompleted}, nil
			})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/notification?action=payment.created&live_mode=true&wh_secret=a1b2c3d4e5f60718&payment=pay-1&data_id=123", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if received.Action != "payment.created" || !received.LiveMode || received.PaymentID != "pay-1" {
			t.Fatalf("notification not bound: %+v", received)
		}
		if received.Raw == "" {
			t.Fatal("expected the raw query to be captured")
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "ok" || body["outcome"] != "completed" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("validation rejections answer 400 with the reason", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			want string
		}{
			{"invalid action", usecase.ErrInvalidActionType, "Invalid action type"},
			{"not live mode", usecase.ErrNotLiveMode, "Transaction is not in live mode"},
			{"invalid secret", usecase.ErrInvalidWebhookSecret, "Invalid webhook secret"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				uc, router := newWebhookRouter(t)
				uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{}, tc.err)

				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/notification?action=payment.created", nil)
				router.ServeHTTP(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
				var body map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if body["error"] != tc.want {
					t.Fatalf("expected error %q, got %q", tc.want, body["error"])
				}
			})
		}
	})

	t.Run("unknown payment answers 404", func(t *testing.T) {
		uc, router := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).Return(usecase.WebhookResult{}, usecase.ErrPaymentNotFound)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/notification?action=payment.created&payment=pay-missing", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("lookup failure still answers ok", func(t *testing.T) {
		uc, router := newWebhookRouter(t)
		uc.EXPECT().HandleNotification(gomock.Any(), gomock.Any()).
			Return(usecase.WebhookResult{Outcome: usecase.OutcomeLookupFailed, Reason: "payment status rejected"}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/notification?action=payment.created&live_mode=true&payment=pay-1", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
