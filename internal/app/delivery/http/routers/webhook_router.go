package routers

import (
	"petfirst-service/internal/app/services/webhook"

	"github.com/go-chi/chi/v5"
)

// Webhook routes stay outside AuthMiddleware: the provider authenticates via
// the body signature, not a bearer token.
func attachWebhookRoutes(router chi.Router, webhookController *webhook.WebhookController) {
	router.Post("/razorpay", webhookController.HandleRazorpayWebhook)
}
