package response

import "webstore_payments/internal/domain/entities"

type GatewayDescriptorResponse struct {
	Driver        string `json:"driver"`
	Type          string `json:"type"`
	Endpoint      string `json:"endpoint"`
	RefundSupport bool   `json:"refund_support"`
}

func FromGatewayDescriptor(d entities.GatewayDescriptor) GatewayDescriptorResponse {
	return GatewayDescriptorResponse{
		Driver:        d.Driver,
		Type:          d.Type,
		Endpoint:      d.Endpoint,
		RefundSupport: d.RefundSupport,
	}
}

// GatewayConfigResponse is the admin view of the gateway configuration. The
// access token is reported as configured/empty only; the secret itself never
// leaves the settings surface.
type GatewayConfigResponse struct {
	AccessTokenSet bool    `json:"access_token_set"`
	Currency       string  `json:"currency"`
	SandboxMode    bool    `json:"sandbox_mode"`
	USDToCurrency  float64 `json:"usd_to_currency"`
}

func FromGatewayConfig(c entities.GatewayConfig) GatewayConfigResponse {
	return GatewayConfigResponse{
		AccessTokenSet: c.AccessToken != "",
		Currency:       c.Currency,
		SandboxMode:    c.SandboxMode,
		USDToCurrency:  c.USDToCurrency,
	}
}
