package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound      = errors.New("payment intent not found")
	ErrInvalidPaymentID     = errors.New("invalid payment id")
	ErrGatewayNotConfigured = errors.New("gateway configuration not found")
)

// CheckoutResult is the outcome of a checkout initiation.
//
// Preference-creation failures are deliberately not propagated as errors: the
// payer must never see raw processor errors. The failure is still observable
// here (Failed/Reason) so callers and tests can tell the path apart from a
// successful redirect.
type CheckoutResult struct {
	RedirectURL  string
	PreferenceID string
	Failed       bool
	Reason       string
}

// ICheckoutUseCase builds a Checkout Pro preference for a pending payment
// intent and resolves the hosted-checkout redirect.

type ICheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, paymentID string) (CheckoutResult, error)
}

// CheckoutOptions carries the deployment-level values embedded in the
// preference: the store name shown on the checkout and the public base URL
// the notification and back URLs are built from.
type CheckoutOptions struct {
	AppName       string
	PublicBaseURL string
}

type CheckoutUseCase struct {
	intents interfaces.IPaymentIntentRepository
	configs interfaces.IGatewayConfigRepository
	secrets ISecretUseCase
	gateway interfaces.IPaymentGateway
	opts    CheckoutOptions
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(
	intents interfaces.IPaymentIntentRepository,
	configs interfaces.IGatewayConfigRepository,
	secrets ISecretUseCase,
	gateway interfaces.IPaymentGateway,
	opts CheckoutOptions,
) *CheckoutUseCase {
	return &CheckoutUseCase{intents: intents, configs: configs, secrets: secrets, gateway: gateway, opts: opts}
}

// InitiateCheckout translates a payment intent plus the gateway configuration
// into a preference-creation request and returns the redirect target.
//
// The webhook secret is ensured and read before the notification URL is
// built, since the URL embeds it.
func (u *CheckoutUseCase) InitiateCheckout(ctx context.Context, paymentID string) (CheckoutResult, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return CheckoutResult{}, ErrInvalidPaymentID
	}
	if u.intents == nil || u.configs == nil || u.secrets == nil || u.gateway == nil {
		return CheckoutResult{}, errors.New("checkout usecase not configured")
	}
	log.Printf("[checkout][usecase] initiate start payment_id=%s", paymentID)

	intent, err := u.intents.GetByID(ctx, paymentID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if intent.ID == "" {
		return CheckoutResult{}, ErrPaymentNotFound
	}

	values, err := u.configs.GetValues(ctx, entities.GatewayDriverMercadoPago)
	if err != nil {
		return CheckoutResult{}, err
	}
	if len(values) == 0 {
		return CheckoutResult{}, ErrGatewayNotConfigured
	}
	cfg := entities.GatewayConfigFromValues(values)

	if err := u.secrets.EnsureWebhookSecret(ctx); err != nil {
		return CheckoutResult{}, err
	}
	secret, err := u.secrets.CurrentWebhookSecret(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	req := interfaces.PreferenceRequest{
		Intent:          intent,
		Config:          cfg,
		Title:           u.opts.AppName,
		UnitPrice:       convertAmount(intent.Amount, cfg.USDToCurrency),
		NotificationURL: u.notificationURL(intent.ID, secret),
		SuccessURL:      u.backURL("success", intent.ID),
		FailureURL:      u.backURL("failure", intent.ID),
	}

	resp, err := u.gateway.CreatePreference(ctx, req)
	if err != nil {
		// Fire-and-forget failure policy: log and return a typed failure,
		// never the processor error itself.
		log.Printf("[checkout][gateway-failed] payment_id=%s err=%v", intent.ID, err)
		return CheckoutResult{Failed: true, Reason: "preference creation failed"}, nil
	}

	redirect := resp.InitPoint
	if cfg.SandboxMode {
		redirect = resp.SandboxInitPoint
	}
	log.Printf("[checkout][usecase] initiate success payment_id=%s preference_id=%s sandbox=%t", intent.ID, resp.PreferenceID, cfg.SandboxMode)
	return CheckoutResult{RedirectURL: redirect, PreferenceID: resp.PreferenceID}, nil
}

// convertAmount applies the configured USD-to-currency rate. A zero (absent)
// rate means no conversion is modeled and the amount passes through.
func convertAmount(amount, rate float64) float64 {
	if rate > 0 {
		return amount * rate
	}
	return amount
}

func (u *CheckoutUseCase) notificationURL(paymentID, secret string) string {
	q := url.Values{}
	q.Set("gateway", entities.GatewayDriverMercadoPago)
	q.Set("payment", paymentID)
	q.Set("wh_secret", secret)
	return strings.TrimRight(u.opts.PublicBaseURL, "/") + "/v1/webhooks/notification?" + q.Encode()
}

func (u *CheckoutUseCase) backURL(outcome, paymentID string) string {
	q := url.Values{}
	q.Set("payment", paymentID)
	return strings.TrimRight(u.opts.PublicBaseURL, "/") + "/checkout/" + outcome + "?" + q.Encode()
}
