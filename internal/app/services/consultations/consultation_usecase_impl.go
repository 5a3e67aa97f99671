package consultations

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/app/services/pricing"
	"petfirst-service/internal/app/services/shared/payment_gateway"
	"petfirst-service/internal/app/services/slots"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type consultationUsecase struct {
	ConsultationRepository ConsultationRepository
	SlotValidator          *slots.Validator
	PricingService         pricing.PricingService
	PaymentGatewayService  payment_gateway.PaymentGatewayService
	Log                    *zap.Logger
}

func NewConsultationUsecase(
	consultationMongoRepository ConsultationRepository,
	slotValidator *slots.Validator,
	pricingService pricing.PricingService,
	paymentGatewayService payment_gateway.PaymentGatewayService,
	logger *zap.Logger,
) ConsultationUsecase {
	return &consultationUsecase{
		ConsultationRepository: consultationMongoRepository,
		SlotValidator:          slotValidator,
		PricingService:         pricingService,
		PaymentGatewayService:  paymentGatewayService,
		Log:                    logger,
	}
}

func (u *consultationUsecase) CreateConsultation(ctx context.Context, userID string, request *requests.CreateConsultation) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.CreateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	consultationType := models.ConsultationType(request.ConsultationType)
	if consultationType == "" {
		consultationType = models.ConsultationTypeNormal
	}
	euthanasiaType := models.EuthanasiaType(request.EuthanasiaType)

	if !u.SlotValidator.IsValidOnlineConsultationWindow(request.StartDateTime, request.EndDateTime) {
		return nil, exceptions.ErrConsultationTimeInvalid()
	}

	existing, err := u.ConsultationRepository.FindActiveByUserAndType(ctx, userID, consultationType, u.SlotValidator.Now())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrActiveConsultationExists()
	}

	// Fast-path check; the unique (consultationType, slotKey) index is the
	// actual arbiter when two creations race.
	truncStart, truncEnd := slots.TruncateWindow(request.StartDateTime, request.EndDateTime)
	taken, err := u.ConsultationRepository.FindOverlappingSlot(ctx, consultationType, truncStart, truncEnd, "")
	if err != nil {
		return nil, err
	}
	if taken != nil {
		return nil, exceptions.ErrSlotAlreadyBooked()
	}

	amount, err := u.PricingService.ConsultationAmount(ctx, consultationType, euthanasiaType)
	if err != nil {
		return nil, err
	}

	order, err := u.PaymentGatewayService.CreateOrder(ctx, amount, models.OrderTagConsultation, "")
	if err != nil {
		return nil, err
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	petObjectID, err := primitive.ObjectIDFromHex(request.PetID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	consultation := &models.Consultation{
		UserID:            userObjectID,
		PetID:             petObjectID,
		StartDateTime:     request.StartDateTime,
		EndDateTime:       request.EndDateTime,
		SlotKey:           slots.SlotKey(request.StartDateTime),
		AppointmentReason: request.AppointmentReason,
		ConsultationType:  consultationType,
		EuthanasiaType:    euthanasiaType,
		Status:            models.ConsultationStatusPending,
		PaymentStatus:     models.PaymentStatusPending,
		Amount:            amount,
		ProviderOrderID:   order.ProviderOrderID,
	}
	consultationID, err := u.ConsultationRepository.CreateConsultation(ctx, consultation)
	if err != nil {
		return nil, err
	}

	u.Log.Info("consultationUsecase.CreateConsultation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationKey, consultationID),
		zap.String(constvars.LoggingOrderIDKey, order.ProviderOrderID),
	)
	return order, nil
}

func (u *consultationUsecase) UpdateConsultation(ctx context.Context, request *requests.UpdateConsultation) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("consultationUsecase.UpdateConsultation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingConsultationKey, request.ID),
	)

	existing, err := u.ConsultationRepository.FindByID(ctx, request.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return exceptions.ErrConsultationNotFound()
	}
	if existing.Status == models.ConsultationStatusSuccess {
		return exceptions.ErrConsultationAlreadyPaid()
	}
	if u.SlotValidator.WithinRescheduleCutoff(existing.StartDateTime) {
		return exceptions.ErrConsultationRescheduleCutoff()
	}

	if !u.SlotValidator.IsValidOnlineConsultationWindow(request.StartDateTime, request.EndDateTime) {
		return exceptions.ErrConsultationTimeInvalid()
	}

	truncStart, truncEnd := slots.TruncateWindow(request.StartDateTime, request.EndDateTime)
	taken, err := u.ConsultationRepository.FindOverlappingSlot(ctx, existing.ConsultationType, truncStart, truncEnd, request.ID)
	if err != nil {
		return err
	}
	if taken != nil {
		return exceptions.ErrSlotAlreadyBooked()
	}

	return u.ConsultationRepository.UpdateWindow(ctx, request.ID, request.StartDateTime, request.EndDateTime, slots.SlotKey(request.StartDateTime))
}
