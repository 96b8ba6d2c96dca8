package entities

import "strconv"

// GatewayDriverMercadoPago identifies the single Mercado Pago configuration row.
const GatewayDriverMercadoPago = "mercadopago"

// Gateway configuration keys as persisted in the admin key/value surface.
//
// GatewayKeySandboxMode is misspelled on purpose: the key name is part of the
// external contract and existing rows use it.
const (
	GatewayKeyAccessToken   = "access_token"
	GatewayKeyCurrency      = "currency"
	GatewayKeySandboxMode   = "sandox_mode"
	GatewayKeyUSDToCurrency = "usd_to_currency"
)

// GatewayConfig is the normalized Mercado Pago gateway configuration.
//
// The persisted representation is a string key/value map; normalization of the
// boolean flag and the numeric rate happens once, at the loading boundary, so
// business logic never compares "true"/"false" strings.

type GatewayConfig struct {
	AccessToken   string  `json:"access_token"`
	Currency      string  `json:"currency"`
	SandboxMode   bool    `json:"sandbox_mode"`
	USDToCurrency float64 `json:"usd_to_currency"`
}

// GatewayConfigFromValues builds a GatewayConfig from the stored key/value rows.
func GatewayConfigFromValues(values map[string]string) GatewayConfig {
	sandbox, _ := strconv.ParseBool(values[GatewayKeySandboxMode])
	rate, _ := strconv.ParseFloat(values[GatewayKeyUSDToCurrency], 64)
	return GatewayConfig{
		AccessToken:   values[GatewayKeyAccessToken],
		Currency:      values[GatewayKeyCurrency],
		SandboxMode:   sandbox,
		USDToCurrency: rate,
	}
}

// Values returns the persisted key/value representation of the configuration.
func (c GatewayConfig) Values() map[string]string {
	return map[string]string{
		GatewayKeyAccessToken:   c.AccessToken,
		GatewayKeyCurrency:      c.Currency,
		GatewayKeySandboxMode:   strconv.FormatBool(c.SandboxMode),
		GatewayKeyUSDToCurrency: strconv.FormatFloat(c.USDToCurrency, 'f', -1, 64),
	}
}

// GatewayDescriptor is the static registration record exposed to the store core.
//
// Type "once" means single payments; subscriptions are not supported by this
// gateway and refunds are not implemented upstream.

type GatewayDescriptor struct {
	Driver        string `json:"driver"`
	Type          string `json:"type"`
	Endpoint      string `json:"endpoint"`
	RefundSupport bool   `json:"refund_support"`
}
