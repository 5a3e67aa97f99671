package requests

// RazorpayWebhookEvent is the envelope delivered by the payment provider.
// The raw body, not this decoded form, is what the signature covers.
type RazorpayWebhookEvent struct {
	Event   string          `json:"event"`
	Payload RazorpayPayload `json:"payload"`
}

type RazorpayPayload struct {
	Order RazorpayOrderWrapper `json:"order"`
}

type RazorpayOrderWrapper struct {
	Entity RazorpayOrderEntity `json:"entity"`
}

type RazorpayOrderEntity struct {
	ID       string        `json:"id"`
	Amount   int64         `json:"amount"`
	Currency string        `json:"currency"`
	Status   string        `json:"status"`
	Notes    RazorpayNotes `json:"notes"`
}

// RazorpayNotes carries the mutually exclusive tag set at order creation.
type RazorpayNotes struct {
	IsBooking             bool `json:"isBooking"`
	IsConsultationBooking bool `json:"isConsultationBooking"`
	IsTravelBooking       bool `json:"isTravelBooking"`
}
