package responses

// PaymentOrder is the handle returned to clients after a booking,
// consultation or travel submission; the client completes payment against it
// out-of-band.
type PaymentOrder struct {
	ProviderOrderID string `json:"providerOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}
