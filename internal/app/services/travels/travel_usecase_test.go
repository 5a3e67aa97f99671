package travels

import (
	"context"
	"testing"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeTravelRepository struct {
	travels []*models.Travel
}

func (f *fakeTravelRepository) CreateTravel(_ context.Context, travel *models.Travel) (string, error) {
	travel.ID = primitive.NewObjectID()
	f.travels = append(f.travels, travel)
	return travel.ID.Hex(), nil
}

func (f *fakeTravelRepository) FindByProviderOrderID(_ context.Context, providerOrderID string) (*models.Travel, error) {
	for _, travel := range f.travels {
		if travel.ProviderOrderID == providerOrderID {
			return travel, nil
		}
	}
	return nil, nil
}

func (f *fakeTravelRepository) MarkPaid(_ context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	for _, travel := range f.travels {
		if travel.ProviderOrderID == providerOrderID && travel.PaymentStatus == models.PaymentStatusPending {
			travel.PaymentStatus = models.PaymentStatusSuccess
			travel.ProviderOrderStatus = providerOrderStatus
			travel.ProviderData = providerData
			return true, nil
		}
	}
	return false, nil
}

type fakeCatalog struct {
	travelService *models.Service
}

func (f *fakeCatalog) FindServiceByID(context.Context, string) (*models.Service, error) {
	return nil, nil
}

func (f *fakeCatalog) FindServiceBySlug(_ context.Context, slug string) (*models.Service, error) {
	if f.travelService != nil && f.travelService.Slug == slug {
		return f.travelService, nil
	}
	return nil, nil
}

func (f *fakeCatalog) FindServiceItemWithService(context.Context, string) (*models.ServiceItem, *models.Service, error) {
	return nil, nil, nil
}

func (f *fakeCatalog) FindBranchByID(context.Context, string) (*models.Branch, error) {
	return nil, nil
}

type fakeTravelPricing struct{}

func (fakeTravelPricing) SeedDefaults(context.Context) error { return nil }

func (fakeTravelPricing) GetConsultationPricing(context.Context) (*responses.ConsultationPricing, error) {
	return nil, nil
}

func (fakeTravelPricing) UpdateConsultationPricing(context.Context, *requests.UpdateConsultationPricing) error {
	return nil
}

func (fakeTravelPricing) ConsultationAmount(context.Context, models.ConsultationType, models.EuthanasiaType) (int64, error) {
	return 0, nil
}

func (fakeTravelPricing) TravelAmount(_ context.Context, travelType models.TravelType) (int64, error) {
	if travelType == models.TravelTypeInternational {
		return 9999, nil
	}
	return 2999, nil
}

type fakeTravelGateway struct {
	orders []int64
	tags   []models.OrderTag
}

func (f *fakeTravelGateway) CreateOrder(_ context.Context, amount int64, tag models.OrderTag, _ string) (*responses.PaymentOrder, error) {
	f.orders = append(f.orders, amount)
	f.tags = append(f.tags, tag)
	return &responses.PaymentOrder{ProviderOrderID: "order_travel_1", Amount: amount * 100, Currency: "INR"}, nil
}

type fakeStorage struct {
	uploads map[string][]byte
}

func (f *fakeStorage) UploadDocument(_ context.Context, data []byte, _, fileName, _ string) (string, error) {
	if f.uploads == nil {
		f.uploads = make(map[string][]byte)
	}
	f.uploads[fileName] = data
	return fileName, nil
}

func TestCreateTravel(t *testing.T) {
	userID := primitive.NewObjectID()
	petID := primitive.NewObjectID()
	travelDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	newFixture := func(travelService *models.Service) (TravelUsecase, *fakeTravelRepository, *fakeTravelGateway, *fakeStorage) {
		repo := &fakeTravelRepository{}
		gateway := &fakeTravelGateway{}
		store := &fakeStorage{}
		usecase := NewTravelUsecase(repo, &fakeCatalog{travelService: travelService}, fakeTravelPricing{}, gateway, store, "travel-documents", zap.NewNop())
		return usecase, repo, gateway, store
	}

	pricedTravelService := &models.Service{
		ID:               primitive.NewObjectID(),
		Name:             "Pet Travel",
		ServiceType:      models.ServiceTypeBook,
		Slug:             "travel",
		Amount:           5000,
		DiscountedAmount: 4500,
	}

	validRequest := func() *requests.CreateTravel {
		return &requests.CreateTravel{
			PetID:                 petID.Hex(),
			TravelType:            "Domestic",
			TravelDate:            travelDate,
			VaccinationRecordName: "rabies.pdf",
			VaccinationRecordData: []byte("%PDF-1.4 fake"),
		}
	}

	t.Run("creates pending travel with uploaded record", func(t *testing.T) {
		usecase, repo, gateway, store := newFixture(pricedTravelService)

		order, err := usecase.CreateTravel(context.Background(), userID.Hex(), validRequest())
		require.NoError(t, err)
		assert.Equal(t, "order_travel_1", order.ProviderOrderID)
		assert.Equal(t, []int64{4500}, gateway.orders)
		assert.Equal(t, []models.OrderTag{models.OrderTagTravel}, gateway.tags)

		require.Len(t, repo.travels, 1)
		travel := repo.travels[0]
		assert.Equal(t, models.PaymentStatusPending, travel.PaymentStatus)
		assert.Equal(t, int64(4500), travel.Amount)
		assert.NotEmpty(t, travel.VaccinationRecordURL)
		assert.Contains(t, store.uploads, travel.VaccinationRecordURL)
	})

	t.Run("international travel requires microchip number", func(t *testing.T) {
		usecase, repo, gateway, _ := newFixture(pricedTravelService)
		request := validRequest()
		request.TravelType = "International"

		_, err := usecase.CreateTravel(context.Background(), userID.Hex(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
		assert.Empty(t, repo.travels)

		request.MicrochipNumber = "985112003456789"
		_, err = usecase.CreateTravel(context.Background(), userID.Hex(), request)
		require.NoError(t, err)
	})

	t.Run("missing vaccination record rejected", func(t *testing.T) {
		usecase, _, gateway, _ := newFixture(pricedTravelService)
		request := validRequest()
		request.VaccinationRecordData = nil

		_, err := usecase.CreateTravel(context.Background(), userID.Hex(), request)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
	})

	t.Run("missing travel catalog service answers 404", func(t *testing.T) {
		usecase, _, gateway, _ := newFixture(nil)

		_, err := usecase.CreateTravel(context.Background(), userID.Hex(), validRequest())

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
	})

	t.Run("unpriced catalog entry falls back to seeded travel price", func(t *testing.T) {
		unpriced := &models.Service{
			ID:          primitive.NewObjectID(),
			Name:        "Pet Travel",
			ServiceType: models.ServiceTypeBook,
			Slug:        "travel",
		}
		usecase, _, gateway, _ := newFixture(unpriced)
		request := validRequest()
		request.TravelType = "International"
		request.MicrochipNumber = "985112003456789"

		_, err := usecase.CreateTravel(context.Background(), userID.Hex(), request)
		require.NoError(t, err)
		assert.Equal(t, []int64{9999}, gateway.orders)
	})
}
