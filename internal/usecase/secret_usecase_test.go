package usecase

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	mock_interfaces "webstore_payments/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSecretUseCase_EnsureWebhookSecret(t *testing.T) {
	t.Run("generates a 16 character token on an empty store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSecretUseCase(settings)

		var stored string
		settings.EXPECT().Get(gomock.Any(), SettingsKeyWebhookSecret).Return("", nil)
		settings.EXPECT().PutIfAbsent(gomock.Any(), SettingsKeyWebhookSecret, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value string) error {
				stored = value
				return nil
			})

		if err := uc.EnsureWebhookSecret(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(stored) != 16 {
			t.Fatalf("expected 16 character secret, got %d (%q)", len(stored), stored)
		}
		if _, err := hex.DecodeString(stored); err != nil {
			t.Fatalf("expected hex token, got %q", stored)
		}
	})

	t.Run("is a no-op when a secret already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSecretUseCase(settings)

		settings.EXPECT().Get(gomock.Any(), SettingsKeyWebhookSecret).Return("a1b2c3d4e5f60718", nil)

		if err := uc.EnsureWebhookSecret(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("two sequential calls settle on one stored secret", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSecretUseCase(settings)

		var stored string
		settings.EXPECT().Get(gomock.Any(), SettingsKeyWebhookSecret).
			DoAndReturn(func(_ context.Context, _ string) (string, error) {
				return stored, nil
			}).Times(3)
		settings.EXPECT().PutIfAbsent(gomock.Any(), SettingsKeyWebhookSecret, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, value string) error {
				stored = value
				return nil
			})

		if err := uc.EnsureWebhookSecret(context.Background()); err != nil {
			t.Fatalf("first ensure failed: %v", err)
		}
		first := stored
		if err := uc.EnsureWebhookSecret(context.Background()); err != nil {
			t.Fatalf("second ensure failed: %v", err)
		}
		if stored != first {
			t.Fatalf("secret changed between calls: %q -> %q", first, stored)
		}

		secret, err := uc.CurrentWebhookSecret(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if secret != first {
			t.Fatalf("expected %q, got %q", first, secret)
		}
	})
}

func TestSecretUseCase_CurrentWebhookSecret(t *testing.T) {
	t.Run("missing secret is a configuration error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSecretUseCase(settings)

		settings.EXPECT().Get(gomock.Any(), SettingsKeyWebhookSecret).Return("", nil)

		_, err := uc.CurrentWebhookSecret(context.Background())
		if !errors.Is(err, ErrWebhookSecretMissing) {
			t.Fatalf("expected ErrWebhookSecretMissing, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewSecretUseCase(settings)

		settings.EXPECT().Get(gomock.Any(), SettingsKeyWebhookSecret).Return("", errors.New("db"))

		_, err := uc.CurrentWebhookSecret(context.Background())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
