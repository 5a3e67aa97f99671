package webhook

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
)

type WebhookUsecase interface {
	// VerifySignature checks the provider signature over the raw request
	// body. A mismatch is the only webhook outcome answered with non-200.
	VerifySignature(rawBody []byte, signature string) error
	ProcessEvent(ctx context.Context, rawBody []byte, event *requests.RazorpayWebhookEvent) error
}

// Notifier dispatches payment confirmations. All methods are best-effort:
// failures are logged by the implementation and never returned.
type Notifier interface {
	NotifyBookingPaid(ctx context.Context, booking *models.Booking)
	NotifyConsultationPaid(ctx context.Context, consultation *models.Consultation)
	NotifyTravelPaid(ctx context.Context, travel *models.Travel)
}
