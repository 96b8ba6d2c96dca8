package entities

// WebhookActionPaymentCreated is the only notification action this gateway
// handles; anything else is rejected.
const WebhookActionPaymentCreated = "payment.created"

// WebhookNotification is one inbound, untrusted Mercado Pago notification.
//
// It only lives for the duration of the request: the raw payload is logged on
// receipt for audit, validation runs over the typed fields and nothing is
// persisted.
//
//   - PaymentID references the store's PaymentIntent (external_reference).
//   - DataID is Mercado Pago's own transaction id, used for the live lookup.
//   - WebhookSecret must echo the secret embedded in the notification URL.

type WebhookNotification struct {
	Action        string `json:"action"`
	LiveMode      bool   `json:"live_mode"`
	WebhookSecret string `json:"wh_secret"`
	PaymentID     string `json:"payment"`
	DataID        string `json:"data_id"`

	// Raw keeps the original query/body for receipt and failure logging.
	Raw string `json:"-"`
}
