package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"

	"webstore_payments/internal/usecase/interfaces"
)

// SettingsKeyWebhookSecret is the fixed settings key holding the generated
// webhook secret.
const SettingsKeyWebhookSecret = "mercado_pago_wh_secret"

// webhookSecretLength is the length of the generated token in characters.
const webhookSecretLength = 16

var ErrWebhookSecretMissing = errors.New("webhook secret not generated")

// ISecretUseCase manages the shared webhook secret embedded in notification
// URLs and echoed back by Mercado Pago.
//
// The secret is lazily created on first need and stable thereafter: it is
// never rotated or deleted by this service.

type ISecretUseCase interface {
	EnsureWebhookSecret(ctx context.Context) error
	CurrentWebhookSecret(ctx context.Context) (string, error)
}

type SecretUseCase struct {
	settings interfaces.ISettingsRepository
}

var _ ISecretUseCase = (*SecretUseCase)(nil)

func NewSecretUseCase(settings interfaces.ISettingsRepository) *SecretUseCase {
	return &SecretUseCase{settings: settings}
}

// EnsureWebhookSecret generates and persists a webhook secret if none exists.
// Safe to call on every checkout initiation; subsequent calls are no-ops.
func (u *SecretUseCase) EnsureWebhookSecret(ctx context.Context) error {
	if u.settings == nil {
		return errors.New("settings repository not configured")
	}
	current, err := u.settings.Get(ctx, SettingsKeyWebhookSecret)
	if err != nil {
		return err
	}
	if current != "" {
		return nil
	}

	secret, err := generateWebhookSecret()
	if err != nil {
		return err
	}
	// Conditional put: if a concurrent call won the race the stored value
	// stays, and the next read picks it up.
	if err := u.settings.PutIfAbsent(ctx, SettingsKeyWebhookSecret, secret); err != nil {
		return err
	}
	log.Printf("[secret][usecase] webhook secret generated")
	return nil
}

// CurrentWebhookSecret returns the persisted secret. Callers must have run
// EnsureWebhookSecret at least once before; an absent secret is a
// configuration error, not a recoverable condition.
func (u *SecretUseCase) CurrentWebhookSecret(ctx context.Context) (string, error) {
	if u.settings == nil {
		return "", errors.New("settings repository not configured")
	}
	secret, err := u.settings.Get(ctx, SettingsKeyWebhookSecret)
	if err != nil {
		return "", err
	}
	if secret == "" {
		return "", ErrWebhookSecretMissing
	}
	return secret, nil
}

func generateWebhookSecret() (string, error) {
	buf := make([]byte, webhookSecretLength/2)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
