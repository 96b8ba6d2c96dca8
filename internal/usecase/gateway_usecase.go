package usecase

import (
	"context"
	"errors"
	"strconv"

	"webstore_payments/internal/domain/entities"
	"webstore_payments/internal/usecase/interfaces"
)

var (
	ErrRefundUnsupported    = errors.New("refunds are not supported by this gateway")
	ErrInvalidGatewayConfig = errors.New("invalid gateway configuration")
)

// SubscriptionStatus is reported for subscription checks. This gateway only
// supports single payments, so subscriptions always report inactive.
type SubscriptionStatus struct {
	SubscriptionID string `json:"subscription_id"`
	Active         bool   `json:"active"`
}

// IGatewayUseCase exposes the gateway capability surface beyond checkout and
// webhooks: registration descriptor, admin configuration, refund and
// subscription stubs.

type IGatewayUseCase interface {
	Describe() entities.GatewayDescriptor
	GetConfig(ctx context.Context) (entities.GatewayConfig, error)
	UpdateConfig(ctx context.Context, values map[string]string) (entities.GatewayConfig, error)
	Refund(ctx context.Context, paymentID string) error
	CheckSubscription(ctx context.Context, subscriptionID string) (SubscriptionStatus, error)
}

type GatewayUseCase struct {
	configs interfaces.IGatewayConfigRepository
	secrets ISecretUseCase
}

var _ IGatewayUseCase = (*GatewayUseCase)(nil)

func NewGatewayUseCase(configs interfaces.IGatewayConfigRepository, secrets ISecretUseCase) *GatewayUseCase {
	return &GatewayUseCase{configs: configs, secrets: secrets}
}

// Describe returns the static registration record for this gateway.
func (u *GatewayUseCase) Describe() entities.GatewayDescriptor {
	return entities.GatewayDescriptor{
		Driver:        entities.GatewayDriverMercadoPago,
		Type:          "once",
		Endpoint:      entities.GatewayDriverMercadoPago,
		RefundSupport: false,
	}
}

// GetConfig loads the normalized gateway configuration. The webhook secret is
// (re)ensured here so that fetching the admin configuration is enough to make
// the gateway webhook-ready.
func (u *GatewayUseCase) GetConfig(ctx context.Context) (entities.GatewayConfig, error) {
	if err := u.secrets.EnsureWebhookSecret(ctx); err != nil {
		return entities.GatewayConfig{}, err
	}
	values, err := u.configs.GetValues(ctx, entities.GatewayDriverMercadoPago)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	if len(values) == 0 {
		return entities.GatewayConfig{}, ErrGatewayNotConfigured
	}
	return entities.GatewayConfigFromValues(values), nil
}

// UpdateConfig validates and persists the admin key/value surface. Only the
// four known keys are accepted and the sandbox flag must parse as a boolean.
func (u *GatewayUseCase) UpdateConfig(ctx context.Context, values map[string]string) (entities.GatewayConfig, error) {
	for key := range values {
		switch key {
		case entities.GatewayKeyAccessToken, entities.GatewayKeyCurrency,
			entities.GatewayKeySandboxMode, entities.GatewayKeyUSDToCurrency:
		default:
			return entities.GatewayConfig{}, ErrInvalidGatewayConfig
		}
	}
	if v, ok := values[entities.GatewayKeySandboxMode]; ok {
		if _, err := strconv.ParseBool(v); err != nil {
			return entities.GatewayConfig{}, ErrInvalidGatewayConfig
		}
	}
	if v, ok := values[entities.GatewayKeyUSDToCurrency]; ok && v != "" {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return entities.GatewayConfig{}, ErrInvalidGatewayConfig
		}
	}

	current, err := u.configs.GetValues(ctx, entities.GatewayDriverMercadoPago)
	if err != nil {
		return entities.GatewayConfig{}, err
	}
	merged := make(map[string]string, len(current)+len(values))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	if err := u.configs.PutValues(ctx, entities.GatewayDriverMercadoPago, merged); err != nil {
		return entities.GatewayConfig{}, err
	}
	return entities.GatewayConfigFromValues(merged), nil
}

// Refund is not implemented by the upstream gateway.
func (u *GatewayUseCase) Refund(ctx context.Context, paymentID string) error {
	return ErrRefundUnsupported
}

// CheckSubscription always reports inactive: subscriptions are not supported.
func (u *GatewayUseCase) CheckSubscription(ctx context.Context, subscriptionID string) (SubscriptionStatus, error) {
	return SubscriptionStatus{SubscriptionID: subscriptionID, Active: false}, nil
}
