package bookings

import (
	"context"
	"testing"
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/models"
	"petfirst-service/internal/app/services/slots"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
	"petfirst-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type fakeCatalogRepository struct {
	services map[string]*models.Service
	items    map[string]*models.ServiceItem
	branches map[string]*models.Branch
}

func newFakeCatalogRepository() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		services: make(map[string]*models.Service),
		items:    make(map[string]*models.ServiceItem),
		branches: make(map[string]*models.Branch),
	}
}

func (f *fakeCatalogRepository) FindServiceByID(_ context.Context, serviceID string) (*models.Service, error) {
	return f.services[serviceID], nil
}

func (f *fakeCatalogRepository) FindServiceBySlug(_ context.Context, slug string) (*models.Service, error) {
	for _, service := range f.services {
		if service.Slug == slug {
			return service, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalogRepository) FindServiceItemWithService(_ context.Context, serviceItemID string) (*models.ServiceItem, *models.Service, error) {
	item := f.items[serviceItemID]
	if item == nil {
		return nil, nil, nil
	}
	return item, f.services[item.ServiceID.Hex()], nil
}

func (f *fakeCatalogRepository) FindBranchByID(_ context.Context, branchID string) (*models.Branch, error) {
	return f.branches[branchID], nil
}

type fakeBookingRepository struct {
	bookings []*models.Booking
}

func (f *fakeBookingRepository) CreateBooking(_ context.Context, booking *models.Booking) (string, error) {
	booking.ID = primitive.NewObjectID()
	f.bookings = append(f.bookings, booking)
	return booking.ID.Hex(), nil
}

func (f *fakeBookingRepository) FindByProviderOrderID(_ context.Context, providerOrderID string) (*models.Booking, error) {
	for _, booking := range f.bookings {
		if booking.ProviderOrderID == providerOrderID {
			return booking, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepository) MarkPaid(_ context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	for _, booking := range f.bookings {
		if booking.ProviderOrderID == providerOrderID && booking.BookingPaymentStatus == models.PaymentStatusPending {
			booking.BookingPaymentStatus = models.PaymentStatusSuccess
			booking.ProviderOrderStatus = providerOrderStatus
			booking.ProviderData = providerData
			return true, nil
		}
	}
	return false, nil
}

type fakeServiceRecordRepository struct {
	records  []*models.ServiceRecord
	attached map[string]string
}

func newFakeServiceRecordRepository() *fakeServiceRecordRepository {
	return &fakeServiceRecordRepository{attached: make(map[string]string)}
}

func (f *fakeServiceRecordRepository) CreateServiceRecord(_ context.Context, record *models.ServiceRecord) (string, error) {
	record.ID = primitive.NewObjectID()
	f.records = append(f.records, record)
	return record.ID.Hex(), nil
}

func (f *fakeServiceRecordRepository) AttachBooking(_ context.Context, recordID, bookingID string) error {
	f.attached[recordID] = bookingID
	return nil
}

type fakePaymentGateway struct {
	orders  []int64
	tags    []models.OrderTag
	orderID string
}

func (f *fakePaymentGateway) CreateOrder(_ context.Context, amount int64, tag models.OrderTag, _ string) (*responses.PaymentOrder, error) {
	f.orders = append(f.orders, amount)
	f.tags = append(f.tags, tag)
	if f.orderID == "" {
		f.orderID = "order_test_1"
	}
	return &responses.PaymentOrder{
		ProviderOrderID: f.orderID,
		Amount:          amount * 100,
		Currency:        "INR",
	}, nil
}

func fixedValidator(now time.Time) *slots.Validator {
	return &slots.Validator{
		Scheduling: config.Scheduling{
			OperatingHourStart:            8,
			OperatingHourEnd:              21,
			ConsultationDurationInMinutes: 15,
			ConsultationLeadTimeInHours:   2,
			ConsultationHorizonInDays:     15,
			RescheduleCutoffInMinutes:     120,
		},
		Location: time.UTC,
		Now:      func() time.Time { return now },
	}
}

func TestCreateBooking(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	userID := primitive.NewObjectID()
	petID := primitive.NewObjectID()

	homeService := &models.Service{
		ID:               primitive.NewObjectID(),
		Name:             "Home Grooming",
		ServiceType:      models.ServiceTypeHome,
		Slug:             "home-grooming",
		Amount:           1500,
		DiscountedAmount: 1200,
	}
	groomingItem := &models.ServiceItem{
		ID:               primitive.NewObjectID(),
		ServiceID:        homeService.ID,
		Name:             "Large Breed",
		Amount:           2000,
		DiscountedAmount: 1800,
	}
	branch := &models.Branch{ID: primitive.NewObjectID(), Name: "Indiranagar"}

	newFixture := func() (*bookingUsecase, *fakeBookingRepository, *fakeServiceRecordRepository, *fakePaymentGateway) {
		catalogRepo := newFakeCatalogRepository()
		catalogRepo.services[homeService.ID.Hex()] = homeService
		catalogRepo.items[groomingItem.ID.Hex()] = groomingItem
		catalogRepo.branches[branch.ID.Hex()] = branch

		bookingRepo := &fakeBookingRepository{}
		recordRepo := newFakeServiceRecordRepository()
		gateway := &fakePaymentGateway{}

		usecase := NewBookingUsecase(bookingRepo, recordRepo, catalogRepo, fixedValidator(now), gateway, zap.NewNop()).(*bookingUsecase)
		return usecase, bookingRepo, recordRepo, gateway
	}

	validWindow := func() (time.Time, time.Time) {
		start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
		return start, start.Add(time.Hour)
	}

	t.Run("service item booking uses item discounted price", func(t *testing.T) {
		usecase, bookingRepo, recordRepo, gateway := newFixture()
		start, end := validWindow()

		order, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceItemID: groomingItem.ID.Hex(),
			PetID:         petID.Hex(),
			BranchID:      branch.ID.Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, "order_test_1", order.ProviderOrderID)
		assert.Equal(t, []int64{1800}, gateway.orders)
		assert.Equal(t, []models.OrderTag{models.OrderTagBooking}, gateway.tags)

		require.Len(t, bookingRepo.bookings, 1)
		booking := bookingRepo.bookings[0]
		assert.Equal(t, models.PaymentStatusPending, booking.BookingPaymentStatus)
		assert.Equal(t, models.BookingStatusUpcoming, booking.BookingStatus)
		assert.Equal(t, "order_test_1", booking.ProviderOrderID)
		assert.Equal(t, int64(1800), booking.Amount)

		require.Len(t, recordRepo.records, 1)
		record := recordRepo.records[0]
		assert.Equal(t, booking.ServiceRecordID, record.ID)
		assert.Equal(t, booking.ID.Hex(), recordRepo.attached[record.ID.Hex()])
		assert.Equal(t, homeService.ID, record.ServiceID)
		assert.Equal(t, groomingItem.ID, record.ServiceItemID)
		assert.Equal(t, "Large Breed", record.Name)
	})

	t.Run("plain service booking uses service discounted price", func(t *testing.T) {
		usecase, bookingRepo, recordRepo, gateway := newFixture()
		start, end := validWindow()

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceID:     homeService.ID.Hex(),
			PetID:         petID.Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{1200}, gateway.orders)
		assert.Len(t, bookingRepo.bookings, 1)

		require.Len(t, recordRepo.records, 1)
		record := recordRepo.records[0]
		assert.Equal(t, homeService.ID, record.ServiceID)
		assert.True(t, record.ServiceItemID.IsZero())
		assert.Equal(t, "Home Grooming", record.Name)
	})

	t.Run("unknown service item rejected with 404 and no writes", func(t *testing.T) {
		usecase, bookingRepo, recordRepo, gateway := newFixture()
		start, end := validWindow()

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceItemID: primitive.NewObjectID().Hex(),
			PetID:         petID.Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
		assert.Empty(t, bookingRepo.bookings)
		assert.Empty(t, recordRepo.records)
	})

	t.Run("travel service excluded from generic booking", func(t *testing.T) {
		usecase, _, _, gateway := newFixture()
		travelService := &models.Service{
			ID:          primitive.NewObjectID(),
			Name:        "Pet Travel",
			ServiceType: models.ServiceTypeBook,
			Slug:        "travel",
			Amount:      5000,
		}
		usecase.CatalogRepository.(*fakeCatalogRepository).services[travelService.ID.Hex()] = travelService
		start, end := validWindow()

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceID:     travelService.ID.Hex(),
			PetID:         petID.Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
	})

	t.Run("unknown branch rejected", func(t *testing.T) {
		usecase, _, _, gateway := newFixture()
		start, end := validWindow()

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceID:     homeService.ID.Hex(),
			PetID:         petID.Hex(),
			BranchID:      primitive.NewObjectID().Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Empty(t, gateway.orders)
	})

	t.Run("home service outside operating hours answers booking time invalid", func(t *testing.T) {
		usecase, bookingRepo, recordRepo, gateway := newFixture()
		start := time.Date(2025, 6, 2, 22, 0, 0, 0, time.UTC)

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceID:     homeService.ID.Hex(),
			PetID:         petID.Hex(),
			StartDateTime: start,
			EndDateTime:   start.Add(time.Hour),
		})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
		assert.Equal(t, "Booking time invalid.", customErr.ClientMessage)
		assert.Empty(t, gateway.orders)
		assert.Empty(t, bookingRepo.bookings)
		assert.Empty(t, recordRepo.records)
	})

	t.Run("missing discounted price charges zero", func(t *testing.T) {
		usecase, _, _, gateway := newFixture()
		freeService := &models.Service{
			ID:          primitive.NewObjectID(),
			Name:        "First Visit",
			ServiceType: models.ServiceTypeOnline,
			Slug:        "first-visit",
			Amount:      500,
		}
		usecase.CatalogRepository.(*fakeCatalogRepository).services[freeService.ID.Hex()] = freeService
		start, end := validWindow()

		_, err := usecase.CreateBooking(context.Background(), userID.Hex(), &requests.CreateBooking{
			ServiceID:     freeService.ID.Hex(),
			PetID:         petID.Hex(),
			StartDateTime: start,
			EndDateTime:   end,
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{0}, gateway.orders)
	})
}
