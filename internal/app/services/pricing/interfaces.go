package pricing

import (
	"context"
	"time"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
)

// PricingService is the single authority for consultation and travel prices.
// Prices live in Redis so admin updates take effect across instances without
// a redeploy; config only supplies boot-time defaults.
type PricingService interface {
	SeedDefaults(ctx context.Context) error
	GetConsultationPricing(ctx context.Context) (*responses.ConsultationPricing, error)
	UpdateConsultationPricing(ctx context.Context, request *requests.UpdateConsultationPricing) error
	ConsultationAmount(ctx context.Context, consultationType models.ConsultationType, euthanasiaType models.EuthanasiaType) (int64, error)
	TravelAmount(ctx context.Context, travelType models.TravelType) (int64, error)
}

type PriceStore interface {
	GetEntry(ctx context.Context, key string) (*responses.PriceEntry, error)
	SetEntry(ctx context.Context, key string, entry *responses.PriceEntry, exp time.Duration) error
	SetEntryIfAbsent(ctx context.Context, key string, entry *responses.PriceEntry) error
}
