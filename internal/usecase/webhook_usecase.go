package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase/interfaces"
)

// Validation rejections, surfaced to Mercado Pago as 400 with the exact
// reason string.
var (
	ErrInvalidActionType    = errors.New("Invalid action type")
	ErrNotLiveMode          = errors.New("Transaction is not in live mode")
	ErrInvalidWebhookSecret = errors.New("Invalid webhook secret")
)

// paymentStatusApproved is the Mercado Pago payment status that completes an
// intent in live mode.
const paymentStatusApproved = "approved"

// WebhookOutcome describes what the pipeline did after validation passed.
type WebhookOutcome string

const (
	// OutcomeCompleted: this delivery performed the pending -> completed
	// transition.
	OutcomeCompleted WebhookOutcome = "completed"
	// OutcomeAlreadyCompleted: duplicate delivery; the transition had already
	// happened and this call was a no-op.
	OutcomeAlreadyCompleted WebhookOutcome = "already_completed"
	// OutcomeLookupFailed: the live payment lookup errored or returned a
	// non-approved status; the intent stays pending for out-of-band
	// reconciliation and Mercado Pago still gets a success response.
	OutcomeLookupFailed WebhookOutcome = "lookup_failed"
)

// WebhookResult makes the swallowed-failure path observable to callers and
// tests without leaking it to the notification sender.
type WebhookResult struct {
	Outcome WebhookOutcome
	Reason  string
}

// IWebhookUseCase validates one inbound notification and completes the
// matching payment intent exactly once.

type IWebhookUseCase interface {
	HandleNotification(ctx context.Context, n entities.WebhookNotification) (WebhookResult, error)
}

type WebhookUseCase struct {
	intents interfaces.IPaymentIntentRepository
	configs interfaces.IGatewayConfigRepository
	secrets ISecretUseCase
	gateway interfaces.IPaymentGateway
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(
	intents interfaces.IPaymentIntentRepository,
	configs interfaces.IGatewayConfigRepository,
	secrets ISecretUseCase,
	gateway interfaces.IPaymentGateway,
) *WebhookUseCase {
	return &WebhookUseCase{intents: intents, configs: configs, secrets: secrets, gateway: gateway}
}

// HandleNotification runs the validation pipeline over one notification.
//
// Stages, in order: receipt logging (unconditional), action check, live-mode
// consistency check, secret check, payment resolution, completion. Each
// validation stage either rejects with its sentinel error or falls through.
// The pipeline must be safe against zero, one or many deliveries of the same
// underlying payment event.
func (u *WebhookUseCase) HandleNotification(ctx context.Context, n entities.WebhookNotification) (WebhookResult, error) {
	// Receipt log happens before any validation so every delivery is
	// captured for audit regardless of outcome.
	log.Printf("[webhook][received] payload=%s", n.Raw)

	if u.intents == nil || u.configs == nil || u.secrets == nil || u.gateway == nil {
		return WebhookResult{}, errors.New("webhook usecase not configured")
	}

	if n.Action != entities.WebhookActionPaymentCreated {
		return WebhookResult{}, ErrInvalidActionType
	}

	values, err := u.configs.GetValues(ctx, entities.GatewayDriverMercadoPago)
	if err != nil {
		return WebhookResult{}, err
	}
	if len(values) == 0 {
		return WebhookResult{}, ErrGatewayNotConfigured
	}
	cfg := entities.GatewayConfigFromValues(values)

	// A production-configured gateway refuses non-live notifications. When
	// the gateway itself runs in sandbox mode the check is bypassed so test
	// notifications can complete sandbox payments.
	if !n.LiveMode && !cfg.SandboxMode {
		return WebhookResult{}, ErrNotLiveMode
	}

	secret, err := u.secrets.CurrentWebhookSecret(ctx)
	if err != nil {
		return WebhookResult{}, err
	}
	if n.WebhookSecret != secret {
		return WebhookResult{}, ErrInvalidWebhookSecret
	}

	intent, err := u.intents.GetByID(ctx, strings.TrimSpace(n.PaymentID))
	if err != nil {
		return WebhookResult{}, err
	}
	if intent.ID == "" {
		// Data-integrity problem, not a soft rejection: propagate.
		return WebhookResult{}, ErrPaymentNotFound
	}

	if cfg.SandboxMode {
		return u.complete(ctx, intent.ID)
	}

	status, err := u.gateway.GetPaymentStatus(ctx, cfg.AccessToken, n.DataID)
	if err != nil {
		log.Printf("[webhook][lookup-failed] payment_id=%s data_id=%s err=%v payload=%s", intent.ID, n.DataID, err, n.Raw)
		return WebhookResult{Outcome: OutcomeLookupFailed, Reason: err.Error()}, nil
	}
	if status != paymentStatusApproved {
		log.Printf("[webhook][lookup-failed] payment_id=%s data_id=%s status=%s payload=%s", intent.ID, n.DataID, status, n.Raw)
		return WebhookResult{Outcome: OutcomeLookupFailed, Reason: "payment status " + status}, nil
	}

	return u.complete(ctx, intent.ID)
}

func (u *WebhookUseCase) complete(ctx context.Context, paymentID string) (WebhookResult, error) {
	transitioned, err := u.intents.MarkCompleted(ctx, paymentID)
	if err != nil {
		return WebhookResult{}, err
	}
	if !transitioned {
		log.Printf("[webhook][usecase] duplicate delivery payment_id=%s already completed", paymentID)
		return WebhookResult{Outcome: OutcomeAlreadyCompleted}, nil
	}
	log.Printf("[webhook][usecase] payment completed payment_id=%s", paymentID)
	return WebhookResult{Outcome: OutcomeCompleted}, nil
}
