package travels

import (
	"context"
	"fmt"
	"net/http"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/app/services/catalog"
	"petfirst-service/internal/app/services/pricing"
	"petfirst-service/internal/app/services/shared/payment_gateway"
	"petfirst-service/internal/app/services/shared/storage"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type travelUsecase struct {
	TravelRepository      TravelRepository
	CatalogRepository     catalog.CatalogRepository
	PricingService        pricing.PricingService
	PaymentGatewayService payment_gateway.PaymentGatewayService
	Storage               storage.Storage
	BucketName            string
	Log                   *zap.Logger
}

func NewTravelUsecase(
	travelMongoRepository TravelRepository,
	catalogMongoRepository catalog.CatalogRepository,
	pricingService pricing.PricingService,
	paymentGatewayService payment_gateway.PaymentGatewayService,
	minioStorage storage.Storage,
	bucketName string,
	logger *zap.Logger,
) TravelUsecase {
	return &travelUsecase{
		TravelRepository:      travelMongoRepository,
		CatalogRepository:     catalogMongoRepository,
		PricingService:        pricingService,
		PaymentGatewayService: paymentGatewayService,
		Storage:               minioStorage,
		BucketName:            bucketName,
		Log:                   logger,
	}
}

func (u *travelUsecase) CreateTravel(ctx context.Context, userID string, request *requests.CreateTravel) (*responses.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	u.Log.Info("travelUsecase.CreateTravel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
		zap.String("travel_type", request.TravelType),
	)

	travelType := models.TravelType(request.TravelType)
	if travelType == models.TravelTypeInternational && request.MicrochipNumber == "" {
		return nil, exceptions.ErrMicrochipNumberRequired()
	}
	if len(request.VaccinationRecordData) == 0 {
		return nil, exceptions.ErrVaccinationRecordRequired()
	}

	userObjectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	petObjectID, err := primitive.ObjectIDFromHex(request.PetID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	travelService, err := u.CatalogRepository.FindServiceBySlug(ctx, constvars.ServiceSlugTravel)
	if err != nil {
		return nil, err
	}
	if travelService == nil {
		return nil, exceptions.ErrTravelServiceNotFound()
	}

	amount := travelService.DiscountedAmount
	if amount == 0 {
		// The catalog entry carries no price; fall back to the seeded
		// per-travel-type defaults.
		amount, err = u.PricingService.TravelAmount(ctx, travelType)
		if err != nil {
			return nil, err
		}
	}

	objectName := fmt.Sprintf("vaccination-records/%s_%s", uuid.NewString(), request.VaccinationRecordName)
	contentType := http.DetectContentType(request.VaccinationRecordData)
	storedName, err := u.Storage.UploadDocument(ctx, request.VaccinationRecordData, u.BucketName, objectName, contentType)
	if err != nil {
		return nil, err
	}

	order, err := u.PaymentGatewayService.CreateOrder(ctx, amount, models.OrderTagTravel, "")
	if err != nil {
		return nil, err
	}

	travel := &models.Travel{
		UserID:               userObjectID,
		PetID:                petObjectID,
		TravelType:           travelType,
		TravelDate:           request.TravelDate,
		MicrochipNumber:      request.MicrochipNumber,
		IsFitToTravelCert:    request.IsFitToTravelCert,
		IsHealthCertificate:  request.IsHealthCertificate,
		IsBloodTiterTest:     request.IsBloodTiterTest,
		IsNoObjectionCert:    request.IsNoObjectionCert,
		RequiredCertificates: request.RequiredCertificates,
		VaccinationRecordURL: storedName,
		Amount:               amount,
		PaymentStatus:        models.PaymentStatusPending,
		ProviderOrderID:      order.ProviderOrderID,
	}
	travelID, err := u.TravelRepository.CreateTravel(ctx, travel)
	if err != nil {
		return nil, err
	}

	u.Log.Info("travelUsecase.CreateTravel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTravelIDKey, travelID),
		zap.String(constvars.LoggingOrderIDKey, order.ProviderOrderID),
	)
	return order, nil
}
