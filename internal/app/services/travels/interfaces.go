package travels

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"
)

type TravelUsecase interface {
	CreateTravel(ctx context.Context, userID string, request *requests.CreateTravel) (*responses.PaymentOrder, error)
}

type TravelRepository interface {
	CreateTravel(ctx context.Context, travel *models.Travel) (travelID string, err error)
	FindByProviderOrderID(ctx context.Context, providerOrderID string) (*models.Travel, error)
	MarkPaid(ctx context.Context, providerOrderID, providerOrderStatus string, providerData map[string]any) (matched bool, err error)
}
