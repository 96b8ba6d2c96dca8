package interfaces

import (
	"context"

	"webstore_payments/internal/domain/entities"
)

// IPaymentIntentRepository abstracts DynamoDB persistence for PaymentIntent.
//
// MarkCompleted must be idempotent: completing an already-completed intent is
// a no-op, never an error and never a second side effect. Mercado Pago may
// deliver the same notification more than once and two deliveries can race,
// so the store performs a conditional (check-and-set) status transition.

type IPaymentIntentRepository interface {
	Create(ctx context.Context, p entities.PaymentIntent) (entities.PaymentIntent, error)
	GetByID(ctx context.Context, id string) (entities.PaymentIntent, error)
	// MarkCompleted transitions the intent from pending to completed.
	// It returns true when this call performed the transition and false when
	// the intent was already completed.
	MarkCompleted(ctx context.Context, id string) (bool, error)
}
