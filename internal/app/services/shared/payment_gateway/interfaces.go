package payment_gateway

import (
	"context"

	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/dto/responses"
)

// PaymentGatewayService creates provider payment orders. Amount is in whole
// rupees; implementations convert to the provider's subunit.
type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, amount int64, tag models.OrderTag, receipt string) (*responses.PaymentOrder, error)
}
