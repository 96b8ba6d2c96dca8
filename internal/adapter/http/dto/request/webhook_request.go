package request

import (
	"webstore_payments/internal/domain/entities"
)

// WebhookNotificationRequest binds the query/form parameters Mercado Pago
// sends to the notification URL. All fields are untrusted.
//
// live_mode is bound as a string because the processor sends "true"/"false"
// (and sometimes omits it); normalization to bool happens in ToEntity.
type WebhookNotificationRequest struct {
	Action        string `form:"action" json:"action"`
	LiveMode      string `form:"live_mode" json:"live_mode"`
	WebhookSecret string `form:"wh_secret" json:"wh_secret"`
	PaymentID     string `form:"payment" json:"payment"`
	DataID        string `form:"data_id" json:"data_id"`
}

// ToEntity normalizes the inbound parameters into the domain notification.
// raw is the original query/body, kept verbatim for receipt logging.
func (r WebhookNotificationRequest) ToEntity(raw string) entities.WebhookNotification {
	return entities.WebhookNotification{
		Action:        r.Action,
		LiveMode:      r.LiveMode == "true" || r.LiveMode == "1",
		WebhookSecret: r.WebhookSecret,
		PaymentID:     r.PaymentID,
		DataID:        r.DataID,
		Raw:           raw,
	}
}
