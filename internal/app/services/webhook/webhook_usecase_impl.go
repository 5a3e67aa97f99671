package webhook

import (
	"context"

	"petfirst-service/internal/app/services/bookings"
	"petfirst-service/internal/app/services/consultations"
	"petfirst-service/internal/app/services/travels"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type webhookUsecase struct {
	BookingRepository      bookings.BookingRepository
	ConsultationRepository consultations.ConsultationRepository
	TravelRepository       travels.TravelRepository
	Notifier               Notifier
	WebhookSecret          string
	Log                    *zap.Logger
}

func NewWebhookUsecase(
	bookingMongoRepository bookings.BookingRepository,
	consultationMongoRepository consultations.ConsultationRepository,
	travelMongoRepository travels.TravelRepository,
	notifier Notifier,
	webhookSecret string,
	logger *zap.Logger,
) WebhookUsecase {
	return &webhookUsecase{
		BookingRepository:      bookingMongoRepository,
		ConsultationRepository: consultationMongoRepository,
		TravelRepository:       travelMongoRepository,
		Notifier:               notifier,
		WebhookSecret:          webhookSecret,
		Log:                    logger,
	}
}

func (u *webhookUsecase) VerifySignature(rawBody []byte, signature string) error {
	if !verifySignature(rawBody, signature, u.WebhookSecret) {
		return exceptions.ErrWebhookSignatureMismatch()
	}
	return nil
}

// ProcessEvent applies a verified provider event. Only order.paid is
// actioned; every other event, an unknown order tag, or an order whose record
// already left Pending is a no-op so the provider does not keep retrying.
func (u *webhookUsecase) ProcessEvent(ctx context.Context, rawBody []byte, event *requests.RazorpayWebhookEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("webhookUsecase.ProcessEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
	)

	if event.Event != constvars.RazorpayEventOrderPaid {
		return nil
	}

	entity := event.Payload.Order.Entity

	// Raw payload kept verbatim on the record for audit.
	var providerData map[string]any
	if err := json.Unmarshal(rawBody, &providerData); err != nil {
		u.Log.Warn("webhookUsecase could not decode payload for audit copy",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	switch {
	case entity.Notes.IsBooking:
		return u.settleBooking(ctx, requestID, entity, providerData)
	case entity.Notes.IsConsultationBooking:
		return u.settleConsultation(ctx, requestID, entity, providerData)
	case entity.Notes.IsTravelBooking:
		return u.settleTravel(ctx, requestID, entity, providerData)
	default:
		u.Log.Info("webhookUsecase received order without a known tag",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, entity.ID),
		)
		return nil
	}
}

func (u *webhookUsecase) settleBooking(ctx context.Context, requestID string, entity requests.RazorpayOrderEntity, providerData map[string]any) error {
	matched, err := u.BookingRepository.MarkPaid(ctx, entity.ID, entity.Status, providerData)
	if err != nil {
		return err
	}
	if !matched {
		u.logAlreadySettled(requestID, entity.ID)
		return nil
	}

	booking, err := u.BookingRepository.FindByProviderOrderID(ctx, entity.ID)
	if err != nil || booking == nil {
		u.logNotificationLookupFailure(requestID, entity.ID, err)
		return nil
	}
	u.Notifier.NotifyBookingPaid(ctx, booking)
	return nil
}

func (u *webhookUsecase) settleConsultation(ctx context.Context, requestID string, entity requests.RazorpayOrderEntity, providerData map[string]any) error {
	matched, err := u.ConsultationRepository.MarkPaid(ctx, entity.ID, entity.Status, providerData)
	if err != nil {
		return err
	}
	if !matched {
		u.logAlreadySettled(requestID, entity.ID)
		return nil
	}

	consultation, err := u.ConsultationRepository.FindByProviderOrderID(ctx, entity.ID)
	if err != nil || consultation == nil {
		u.logNotificationLookupFailure(requestID, entity.ID, err)
		return nil
	}
	u.Notifier.NotifyConsultationPaid(ctx, consultation)
	return nil
}

func (u *webhookUsecase) settleTravel(ctx context.Context, requestID string, entity requests.RazorpayOrderEntity, providerData map[string]any) error {
	matched, err := u.TravelRepository.MarkPaid(ctx, entity.ID, entity.Status, providerData)
	if err != nil {
		return err
	}
	if !matched {
		u.logAlreadySettled(requestID, entity.ID)
		return nil
	}

	travel, err := u.TravelRepository.FindByProviderOrderID(ctx, entity.ID)
	if err != nil || travel == nil {
		u.logNotificationLookupFailure(requestID, entity.ID, err)
		return nil
	}
	u.Notifier.NotifyTravelPaid(ctx, travel)
	return nil
}

func (u *webhookUsecase) logAlreadySettled(requestID, providerOrderID string) {
	u.Log.Info("webhookUsecase matched no pending record, skipping notifications",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, providerOrderID),
	)
}

func (u *webhookUsecase) logNotificationLookupFailure(requestID, providerOrderID string, err error) {
	u.Log.Warn("webhookUsecase could not reload settled record for notification",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, providerOrderID),
		zap.Error(err),
	)
}
