package requests

// WhatsAppMessage is the payload published to the WhatsApp outbound queue.
// A downstream worker renders the template and talks to the provider.
type WhatsAppMessage struct {
	To           string   `json:"to"`
	TemplateName string   `json:"template_name"`
	Variables    []string `json:"variables"`
	MediaURL     string   `json:"media_url,omitempty"`
}

// SMSMessage is the payload published to the SMS outbound queue.
type SMSMessage struct {
	To   string `json:"to"`
	Body string `json:"body"`
}
