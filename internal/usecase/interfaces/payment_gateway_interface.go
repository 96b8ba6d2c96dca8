package interfaces

import (
	"context"

	"webstore_payments/internal/domain/entities"
)

// PreferenceRequest carries everything needed to create a Checkout Pro
// preference for one payment intent.
type PreferenceRequest struct {
	Intent          entities.PaymentIntent
	Config          entities.GatewayConfig
	Title           string
	UnitPrice       float64
	NotificationURL string
	SuccessURL      string
	FailureURL      string
}

// PreferenceResponse is the minimal preference data the checkout needs: the
// two hosted-checkout entry points returned by Mercado Pago.
type PreferenceResponse struct {
	PreferenceID     string
	InitPoint        string
	SandboxInitPoint string
}

// IPaymentGateway abstracts the Mercado Pago API surface used by this service:
// preference creation for checkout and payment lookup for live webhook
// verification.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (PreferenceResponse, error)
	// GetPaymentStatus fetches the processor-side payment by its own id and
	// returns its status field (e.g. "approved").
	GetPaymentStatus(ctx context.Context, accessToken, dataID string) (string, error)
}
