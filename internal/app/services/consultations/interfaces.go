package consultations

import (
	"context"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
)

type ConsultationUsecase interface {
	CreateConsultation(ctx context.Context, userID string, request *requests.CreateConsultation) (*responses.PaymentOrder, error)
	UpdateConsultation(ctx context.Context, request *requests.UpdateConsultation) error
}

type ConsultationRepository interface {
	// EnsureIndexes installs the unique (consultationType, slotKey) index
	// backing slot exclusivity at the storage layer.
	EnsureIndexes(ctx context.Context) error
	CreateConsultation(ctx context.Context, consultation *models.Consultation) (consultationID string, err error)
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindActiveByUserAndType(ctx context.Context, userID string, consultationType models.ConsultationType, now time.Time) (*models.Consultation, error)
	FindOverlappingSlot(ctx context.Context, consultationType models.ConsultationType, truncStart, truncEnd time.Time, excludeID string) (*models.Consultation, error)
	UpdateWindow(ctx context.Context, consultationID string, start, end time.Time, slotKey string) error
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Consultation, error)
	MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (matched bool, err error)
}
