package entities

import "time"

// PaymentIntentStatus represents the lifecycle of a payment intent.
//
// Only two states exist in this scope: the intent is created pending and the
// Mercado Pago webhook completes it. There is no transition back.

type PaymentIntentStatus string

const (
	PaymentIntentStatusPending   PaymentIntentStatus = "pending"
	PaymentIntentStatusCompleted PaymentIntentStatus = "completed"
)

// PaymentIntent is the payment record owned by the store and settled through
// Mercado Pago Checkout Pro.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Amount is expressed in USD; the checkout converts it with the configured
//     usd_to_currency rate when building the preference.

type PaymentIntent struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`

	PayerName    string `json:"payer_name"`
	PayerSurname string `json:"payer_surname"`
	PayerEmail   string `json:"payer_email"`

	Status      PaymentIntentStatus `json:"status"`
	CreatedAt   time.Time           `json:"created_at"`
	CompletedAt time.Time           `json:"completed_at,omitempty"`
}
