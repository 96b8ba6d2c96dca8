package request

import "testing"

func TestWebhookNotificationRequest_ToEntity(t *testing.T) {
	t.Run("normalizes live_mode variants", func(t *testing.T) {
		cases := []struct {
			value string
			want  bool
		}{
			{"true", true},
			{"1", true},
			{"false", false},
			{"0", false},
			{"", false},
			{"TRUE", false},
		}
		for _, tc := range cases {
			r := WebhookNotificationRequest{LiveMode: tc.value}
			if got := r.ToEntity("").LiveMode; got != tc.want {
				t.Fatalf("live_mode=%q: expected %t, got %t", tc.value, tc.want, got)
			}
		}
	})

	t.Run("carries the raw payload verbatim", func(t *testing.T) {
		raw := "action=payment.created&live_mode=true"
		r := WebhookNotificationRequest{
			Action:        "payment.created",
			LiveMode:      "true",
			WebhookSecret: "a1b2c3d4e5f60718",
			PaymentID:     "pay-1",
			DataID:        "123",
		}
		n := r.ToEntity(raw)
		if n.Raw != raw {
			t.Fatalf("raw payload mutated: %q", n.Raw)
		}
		if n.Action != "payment.created" || n.PaymentID != "pay-1" || n.DataID != "123" {
			t.Fatalf("fields not carried over: %+v", n)
		}
	})
}
