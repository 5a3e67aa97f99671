package bookings

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, userID string, request *requests.CreateBooking) (*responses.PaymentOrder, error)
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *models.Booking) (bookingID string, err error)
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Booking, error)
	MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (matched bool, err error)
}

type ServiceRecordRepository interface {
	CreateServiceRecord(ctx context.Context, record *models.ServiceRecord) (recordID string, err error)
	AttachBooking(ctx context.Context, recordID, bookingID string) error
}
