package response

import (
	"time"

	"webstore_payments/internal/domain/entities"
)

type PaymentIntentResponse struct {
	ID          string     `json:"id"`
	Amount      float64    `json:"amount"`
	Description string     `json:"description,omitempty"`
	PayerName   string     `json:"payer_name,omitempty"`
	PayerEmail  string     `json:"payer_email"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func FromPaymentIntent(p entities.PaymentIntent) PaymentIntentResponse {
	resp := PaymentIntentResponse{
		ID:          p.ID,
		Amount:      p.Amount,
		Description: p.Description,
		PayerName:   p.PayerName,
		PayerEmail:  p.PayerEmail,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
	if !p.CompletedAt.IsZero() {
		completedAt := p.CompletedAt
		resp.CompletedAt = &completedAt
	}
	return resp
}
