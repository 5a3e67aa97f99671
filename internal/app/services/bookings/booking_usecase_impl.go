package bookings

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/app/services/catalog"
	"petfirst-service/internal/app/services/shared/payment_gateway"
	"petfirst-service/internal/app/services/slots"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository       BookingRepository
	ServiceRecordRepository ServiceRecordRepository
	CatalogRepository       catalog.CatalogRepository
	SlotValidator           *slots.Validator
	PaymentGatewayService   payment_gateway.PaymentGatewayService
	Log                     *zap.Logger
}

func NewBookingUsecase(
	bookingMongoRepository BookingRepository,
	serviceRecordMongoRepository ServiceRecordRepository,
	catalogMongoRepository catalog.CatalogRepository,
	slotValidator *slots.Validator,
	paymentGatewayService payment_gateway.PaymentGatewayService,
	logger *zap.Logger,
) BookingUsecase {
	return &bookingUsecase{
		BookingRepository:       bookingMongoRepository,
		ServiceRecordRepository: serviceRecordMongoRepository,
		CatalogRepository:       catalogMongoRepository,
		SlotValidator:           slotValidator,
		PaymentGatewayService:   paymentGatewayService,
		Log:                     logger,
	}
}

// CreateBooking runs strictly validate -> price -> order -> persist. No
// document is written before every validation has passed, and the payment
// order exists before the pending booking references it.
func (u *bookingUsecase) CreateBooking(ctx context.Context, userID string, request *requests.CreateBooking) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	petObjectID, err := primitive.ObjectIDFromHex(request.PetID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var (
		serviceType   models.ServiceType
		amount        int64
		serviceID     primitive.ObjectID
		serviceItemID primitive.ObjectID
		serviceName   string
	)

	if request.ServiceItemID != "" {
		item, parentService, err := u.CatalogRepository.FindServiceItemWithService(ctx, request.ServiceItemID)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, exceptions.ErrServiceItemDataNotFound()
		}
		if parentService == nil {
			return nil, exceptions.ErrServiceDataNotFound()
		}
		serviceType = parentService.ServiceType
		amount = item.DiscountedAmount
		serviceID = parentService.ID
		serviceItemID = item.ID
		serviceName = item.Name
	} else {
		service, err := u.CatalogRepository.FindServiceByID(ctx, request.ServiceID)
		if err != nil {
			return nil, err
		}
		if service == nil || service.Slug == constvars.ServiceSlugTravel {
			return nil, exceptions.ErrServiceDataNotFound()
		}
		serviceType = service.ServiceType
		amount = service.DiscountedAmount
		serviceID = service.ID
		serviceName = service.Name
	}

	var branchObjectID primitive.ObjectID
	if request.BranchID != "" {
		branch, err := u.CatalogRepository.FindBranchByID(ctx, request.BranchID)
		if err != nil {
			return nil, err
		}
		if branch == nil {
			return nil, exceptions.ErrBranchNotFound()
		}
		branchObjectID = branch.ID
	}

	if !u.SlotValidator.IsValidBookingWindow(serviceType, request.StartDateTime, request.EndDateTime) {
		return nil, exceptions.ErrBookingTimeInvalid()
	}

	order, err := u.PaymentGatewayService.CreateOrder(ctx, amount, models.OrderTagBooking, "")
	if err != nil {
		return nil, err
	}

	record := &models.ServiceRecord{
		UserID:        userObjectID,
		PetID:         petObjectID,
		ServiceID:     serviceID,
		ServiceItemID: serviceItemID,
		BranchID:      branchObjectID,
		Name:          serviceName,
		StartDateTime: request.StartDateTime,
		EndDateTime:   request.EndDateTime,
		Status:        models.BookingStatusUpcoming,
	}
	recordID, err := u.ServiceRecordRepository.CreateServiceRecord(ctx, record)
	if err != nil {
		return nil, err
	}
	recordObjectID, err := primitive.ObjectIDFromHex(recordID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	booking := &models.Booking{
		UserID:               userObjectID,
		PetID:                petObjectID,
		ServiceID:            serviceID,
		ServiceItemID:        serviceItemID,
		BranchID:             branchObjectID,
		ServiceRecordID:      recordObjectID,
		StartDateTime:        request.StartDateTime,
		EndDateTime:          request.EndDateTime,
		TimeSlotLabel:        request.TimeSlotLabel,
		AppointmentReason:    request.AppointmentReason,
		Amount:               amount,
		BookingStatus:        models.BookingStatusUpcoming,
		BookingPaymentStatus: models.PaymentStatusPending,
		ProviderOrderID:      order.ProviderOrderID,
	}
	bookingID, err := u.BookingRepository.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := u.ServiceRecordRepository.AttachBooking(ctx, recordID, bookingID); err != nil {
		u.Log.Warn("bookingUsecase.CreateBooking could not backfill booking id on service record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBookingIDKey, bookingID),
			zap.Error(err),
		)
	}

	u.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, bookingID),
		zap.String(constvars.LoggingOrderIDKey, order.ProviderOrderID),
	)
	return order, nil
}
