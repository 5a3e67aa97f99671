package webhook

import (
	"context"
	"fmt"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/app/services/catalog"
	"petfirst-service/internal/app/services/shared/sms"
	"petfirst-service/internal/app/services/shared/whatsapp"
	"petfirst-service/internal/app/services/users"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type paymentNotifier struct {
	UserRepository    users.UserRepository
	CatalogRepository catalog.CatalogRepository
	WhatsAppService   whatsapp.WhatsAppService
	SMSService        sms.SMSService
	Location          *time.Location
	AdminMobileNumber string
	Log               *zap.Logger
}

func NewPaymentNotifier(
	userMongoRepository users.UserRepository,
	catalogMongoRepository catalog.CatalogRepository,
	whatsAppService whatsapp.WhatsAppService,
	smsService sms.SMSService,
	location *time.Location,
	adminMobileNumber string,
	logger *zap.Logger,
) Notifier {
	return &paymentNotifier{
		UserRepository:    userMongoRepository,
		CatalogRepository: catalogMongoRepository,
		WhatsAppService:   whatsAppService,
		SMSService:        smsService,
		Location:          location,
		AdminMobileNumber: adminMobileNumber,
		Log:               logger,
	}
}

func (n *paymentNotifier) NotifyBookingPaid(ctx context.Context, booking *models.Booking) {
	user := n.lookupUser(ctx, booking.UserID.Hex(), booking.ProviderOrderID)
	if user == nil {
		return
	}

	serviceName, serviceSlug := n.bookingDisplayMetadata(ctx, booking)
	template := bookingTemplate(serviceSlug)
	n.dispatch(ctx, user, template, serviceName, booking.StartDateTime, booking.ProviderOrderID)
}

func (n *paymentNotifier) NotifyConsultationPaid(ctx context.Context, consultation *models.Consultation) {
	user := n.lookupUser(ctx, consultation.UserID.Hex(), consultation.ProviderOrderID)
	if user == nil {
		return
	}

	serviceName := "Online Consultation"
	if consultation.ConsultationType == models.ConsultationTypeEuthanasia {
		serviceName = "Euthanasia Consultation"
	}
	template := consultationTemplate(consultation.ConsultationType)
	n.dispatch(ctx, user, template, serviceName, consultation.StartDateTime, consultation.ProviderOrderID)
}

func (n *paymentNotifier) NotifyTravelPaid(ctx context.Context, travel *models.Travel) {
	user := n.lookupUser(ctx, travel.UserID.Hex(), travel.ProviderOrderID)
	if user == nil {
		return
	}

	n.dispatch(ctx, user, templateTravel, "Pet Travel Assistance", travel.TravelDate, travel.ProviderOrderID)
}

func (n *paymentNotifier) lookupUser(ctx context.Context, userID, providerOrderID string) *models.User {
	user, err := n.UserRepository.FindByID(ctx, userID)
	if err != nil {
		n.Log.Warn("paymentNotifier failed to look up user",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingOrderIDKey, providerOrderID),
			zap.Error(err),
		)
		return nil
	}
	if user == nil || user.MobileNumber == "" {
		n.Log.Warn("paymentNotifier has no reachable user for paid order",
			zap.String(constvars.LoggingUserIDKey, userID),
			zap.String(constvars.LoggingOrderIDKey, providerOrderID),
		)
		return nil
	}
	return user
}

// bookingDisplayMetadata resolves the human-readable name and the template
// slug for a booking. Item bookings display the item name but template on the
// parent service slug.
func (n *paymentNotifier) bookingDisplayMetadata(ctx context.Context, booking *models.Booking) (name, slug string) {
	if !booking.ServiceItemID.IsZero() {
		item, parent, err := n.CatalogRepository.FindServiceItemWithService(ctx, booking.ServiceItemID.Hex())
		if err != nil || item == nil {
			return "your service", ""
		}
		if parent != nil {
			return item.Name, parent.Slug
		}
		return item.Name, ""
	}

	service, err := n.CatalogRepository.FindServiceByID(ctx, booking.ServiceID.Hex())
	if err != nil || service == nil {
		return "your service", ""
	}
	return service.Name, service.Slug
}

func (n *paymentNotifier) dispatch(ctx context.Context, user *models.User, template notificationTemplate, serviceName string, appointmentAt time.Time, providerOrderID string) {
	formattedDate, formattedTime := utils.FormatDateTime(appointmentAt, n.Location)

	message := &requests.WhatsAppMessage{
		To:           user.MobileNumber,
		TemplateName: template.Name,
		Variables:    []string{user.Name, serviceName, formattedDate, formattedTime},
		MediaURL:     template.MediaURL,
	}
	if err := n.WhatsAppService.SendWhatsAppMessage(ctx, message); err != nil {
		n.Log.Warn("paymentNotifier failed to publish WhatsApp message",
			zap.String(constvars.LoggingOrderIDKey, providerOrderID),
			zap.Error(err),
		)
	}

	smsDate, smsTime := utils.FormatDateTimeForSMS(appointmentAt, n.Location)
	smsMessage := &requests.SMSMessage{
		To:   user.MobileNumber,
		Body: fmt.Sprintf("Hi %s, your payment is received and %s is confirmed for %s at %s. - PetFirst", user.Name, serviceName, smsDate, smsTime),
	}
	if err := n.SMSService.SendSMSMessage(ctx, smsMessage); err != nil {
		n.Log.Warn("paymentNotifier failed to publish SMS message",
			zap.String(constvars.LoggingOrderIDKey, providerOrderID),
			zap.Error(err),
		)
	}

	if n.AdminMobileNumber == "" {
		return
	}
	adminMessage := &requests.WhatsAppMessage{
		To:           n.AdminMobileNumber,
		TemplateName: template.Name,
		Variables:    []string{user.Name, serviceName, formattedDate, formattedTime},
		MediaURL:     template.MediaURL,
	}
	if err := n.WhatsAppService.SendWhatsAppMessage(ctx, adminMessage); err != nil {
		n.Log.Warn("paymentNotifier failed to publish admin WhatsApp message",
			zap.String(constvars.LoggingOrderIDKey, providerOrderID),
			zap.Error(err),
		)
	}
}
