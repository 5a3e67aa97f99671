package webhook

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const testWebhookSecret = "whsec_test"

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

type fakeConsultationRepository struct {
	consultations []*models.Consultation
}

func (f *fakeConsultationRepository) EnsureIndexes(context.Context) error { return nil }

func (f *fakeConsultationRepository) CreateConsultation(_ context.Context, consultation *models.Consultation) (string, error) {
	consultation.ID = primitive.NewObjectID()
	f.consultations = append(f.consultations, consultation)
	return consultation.ID.Hex(), nil
}

func (f *fakeConsultationRepository) FindByID(context.Context, string) (*models.Consultation, error) {
	return nil, nil
}

func (f *fakeConsultationRepository) FindActiveByUserAndType(context.Context, string, models.ConsultationType, time.Time) (*models.Consultation, error) {
	return nil, nil
}

func (f *fakeConsultationRepository) FindOverlappingSlot(context.Context, models.ConsultationType, time.Time, time.Time, string) (*models.Consultation, error) {
	return nil, nil
}

func (f *fakeConsultationRepository) UpdateWindow(context.Context, string, time.Time, time.Time, string) error {
	return nil
}

func (f *fakeConsultationRepository) FindByProviderOrderID(_ context.Context, providerOrderID string) (*models.Consultation, error) {
	for _, consultation := range f.consultations {
		if consultation.ProviderOrderID == providerOrderID {
			return consultation, nil
		}
	}
	return nil, nil
}

func (f *fakeConsultationRepository) MarkPaid(_ context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (bool, error) {
	for _, consultation := range f.consultations {
		if consultation.ProviderOrderID == providerOrderID && consultation.PaymentStatus == models.PaymentStatusPending {
			consultation.PaymentStatus = models.PaymentStatusSuccess
			consultation.Status = models.ConsultationStatusSuccess
			consultation.ProviderOrderStatus = providerOrderStatus
			consultation.ProviderData = providerData
			return true, nil
		}
	}
	return false, nil
}

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

type recordingNotifier struct {
	bookingNotifications      int
	consultationNotifications int
	travelNotifications       int
}

func (r *recordingNotifier) NotifyBookingPaid(context.Context, *models.Booking) {
	r.bookingNotifications++
}

func (r *recordingNotifier) NotifyConsultationPaid(context.Context, *models.Consultation) {
	r.consultationNotifications++
}

func (r *recordingNotifier) NotifyTravelPaid(context.Context, *models.Travel) {
	r.travelNotifications++
}

func orderPaidBody(t *testing.T, providerOrderID string, notes requests.RazorpayNotes) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"event": "order.paid",
		"payload": map[string]any{
			"order": map[string]any{
				"entity": map[string]any{
					"id":       providerOrderID,
					"amount":   45000,
					"currency": "INR",
					"status":   "paid",
					"notes": map[string]bool{
						"isBooking":             notes.IsBooking,
						"isConsultationBooking": notes.IsConsultationBooking,
						"isTravelBooking":       notes.IsTravelBooking,
					},
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

func newWebhookFixture() (WebhookUsecase, *fakeBookingRepository, *fakeConsultationRepository, *fakeTravelRepository, *recordingNotifier) {
	bookingRepo := &fakeBookingRepository{}
	consultationRepo := &fakeConsultationRepository{}
	travelRepo := &fakeTravelRepository{}
	notifier := &recordingNotifier{}
	usecase := NewWebhookUsecase(bookingRepo, consultationRepo, travelRepo, notifier, testWebhookSecret, zap.NewNop())
	return usecase, bookingRepo, consultationRepo, travelRepo, notifier
}

func decodeEvent(t *testing.T, body []byte) *requests.RazorpayWebhookEvent {
	t.Helper()
	event := new(requests.RazorpayWebhookEvent)
	require.NoError(t, json.Unmarshal(body, event))
	return event
}

func TestVerifySignature(t *testing.T) {
	usecase, _, _, _, _ := newWebhookFixture()
	body := orderPaidBody(t, "order_sig", requests.RazorpayNotes{IsBooking: true})

	assert.NoError(t, usecase.VerifySignature(body, ComputeSignature(body, testWebhookSecret)))

	tampered := bytes.Replace(body, []byte("order_sig"), []byte("order_evil"), 1)
	assert.Error(t, usecase.VerifySignature(tampered, ComputeSignature(body, testWebhookSecret)))
	assert.Error(t, usecase.VerifySignature(body, ComputeSignature(body, "wrong_secret")))
	assert.Error(t, usecase.VerifySignature(body, ""))
}

func TestProcessEvent(t *testing.T) {
	t.Run("booking order marks paid and notifies once", func(t *testing.T) {
		usecase, bookingRepo, _, _, notifier := newWebhookFixture()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			UserID:               primitive.NewObjectID(),
			ProviderOrderID:      "order_b1",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_b1", requests.RazorpayNotes{IsBooking: true})

		err := usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body))
		require.NoError(t, err)

		booking := bookingRepo.bookings[0]
		assert.Equal(t, models.PaymentStatusSuccess, booking.BookingPaymentStatus)
		assert.Equal(t, "paid", booking.ProviderOrderStatus)
		assert.NotEmpty(t, booking.ProviderData)
		assert.Equal(t, 1, notifier.bookingNotifications)
	})

	t.Run("second delivery does not re-notify", func(t *testing.T) {
		usecase, bookingRepo, _, _, notifier := newWebhookFixture()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			ProviderOrderID:      "order_b2",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_b2", requests.RazorpayNotes{IsBooking: true})

		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))
		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))

		assert.Equal(t, 1, notifier.bookingNotifications)
	})

	t.Run("consultation tag settles consultation", func(t *testing.T) {
		usecase, _, consultationRepo, _, notifier := newWebhookFixture()
		consultationRepo.consultations = append(consultationRepo.consultations, &models.Consultation{
			ID:              primitive.NewObjectID(),
			ProviderOrderID: "order_c1",
			PaymentStatus:   models.PaymentStatusPending,
			Status:          models.ConsultationStatusPending,
		})
		body := orderPaidBody(t, "order_c1", requests.RazorpayNotes{IsConsultationBooking: true})

		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))

		consultation := consultationRepo.consultations[0]
		assert.Equal(t, models.PaymentStatusSuccess, consultation.PaymentStatus)
		assert.Equal(t, models.ConsultationStatusSuccess, consultation.Status)
		assert.Equal(t, 1, notifier.consultationNotifications)
	})

	t.Run("travel tag settles travel", func(t *testing.T) {
		usecase, _, _, travelRepo, notifier := newWebhookFixture()
		travelRepo.travels = append(travelRepo.travels, &models.Travel{
			ID:              primitive.NewObjectID(),
			ProviderOrderID: "order_t1",
			PaymentStatus:   models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_t1", requests.RazorpayNotes{IsTravelBooking: true})

		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))
		assert.Equal(t, 1, notifier.travelNotifications)
	})

	t.Run("unknown tag is a no-op", func(t *testing.T) {
		usecase, bookingRepo, _, _, notifier := newWebhookFixture()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			ProviderOrderID:      "order_u1",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_u1", requests.RazorpayNotes{})

		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))

		assert.Equal(t, models.PaymentStatusPending, bookingRepo.bookings[0].BookingPaymentStatus)
		assert.Equal(t, 0, notifier.bookingNotifications)
	})

	t.Run("non order.paid event ignored", func(t *testing.T) {
		usecase, bookingRepo, _, _, notifier := newWebhookFixture()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			ProviderOrderID:      "order_e1",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body, err := json.Marshal(map[string]any{"event": "payment.failed"})
		require.NoError(t, err)

		require.NoError(t, usecase.ProcessEvent(context.Background(), body, decodeEvent(t, body)))

		assert.Equal(t, models.PaymentStatusPending, bookingRepo.bookings[0].BookingPaymentStatus)
		assert.Equal(t, 0, notifier.bookingNotifications)
	})
}

func TestHandleRazorpayWebhook(t *testing.T) {
	newController := func() (*WebhookController, *fakeBookingRepository, *recordingNotifier) {
		usecase, bookingRepo, _, _, notifier := newWebhookFixture()
		return NewWebhookController(zap.NewNop(), usecase), bookingRepo, notifier
	}

	post := func(body []byte, signature string, controller *WebhookController) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/webhook/razorpay", bytes.NewReader(body))
		request.Header.Set(constvars.HeaderRazorpaySignature, signature)
		recorder := httptest.NewRecorder()
		controller.HandleRazorpayWebhook(recorder, request)
		return recorder
	}

	t.Run("valid delivery answers 200 and settles the record", func(t *testing.T) {
		controller, bookingRepo, notifier := newController()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			ProviderOrderID:      "order_h1",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_h1", requests.RazorpayNotes{IsBooking: true})

		recorder := post(body, ComputeSignature(body, testWebhookSecret), controller)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, models.PaymentStatusSuccess, bookingRepo.bookings[0].BookingPaymentStatus)
		assert.Equal(t, 1, notifier.bookingNotifications)
	})

	t.Run("tampered body rejected with 400", func(t *testing.T) {
		controller, bookingRepo, notifier := newController()
		bookingRepo.bookings = append(bookingRepo.bookings, &models.Booking{
			ID:                   primitive.NewObjectID(),
			ProviderOrderID:      "order_h2",
			BookingPaymentStatus: models.PaymentStatusPending,
		})
		body := orderPaidBody(t, "order_h2", requests.RazorpayNotes{IsBooking: true})
		signature := ComputeSignature(body, testWebhookSecret)
		tampered := bytes.Replace(body, []byte(`45000`), []byte(`1`), 1)

		recorder := post(tampered, signature, controller)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, models.PaymentStatusPending, bookingRepo.bookings[0].BookingPaymentStatus)
		assert.Equal(t, 0, notifier.bookingNotifications)
	})

	t.Run("unknown tag still answers 200", func(t *testing.T) {
		controller, _, _ := newController()
		body := orderPaidBody(t, "order_h3", requests.RazorpayNotes{})

		recorder := post(body, ComputeSignature(body, testWebhookSecret), controller)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
