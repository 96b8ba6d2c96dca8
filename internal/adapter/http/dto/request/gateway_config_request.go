package request

// GatewayConfigUpdateRequest is the admin payload for editing the gateway
// key/value settings. Keys not sent are left unchanged.
//
// Known keys: access_token, currency, sandox_mode ("true"/"false"; the
// misspelling is part of the stored contract), usd_to_currency.
type GatewayConfigUpdateRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}
