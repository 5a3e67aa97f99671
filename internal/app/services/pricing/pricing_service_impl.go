package pricing

import (
	"context"
	"fmt"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/models"
	"petfirst-service/internal/pkg/constvars"
	"petfirst-service/internal/pkg/dto/requests"
	"petfirst-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

const (
	priceKeyConsultationNormal     = "pricing:consultation:Normal"
	priceKeyConsultationEuthanasia = "pricing:consultation:Euthanasia"
	priceKeyEuthanasiaOnline       = "pricing:consultation:EuthanasiaOnline"
	priceKeyTravelDomestic         = "pricing:travel:Domestic"
	priceKeyTravelInternational    = "pricing:travel:International"

	updateKeyEuthanasiaOnline = "EuthanasiaOnline"
)

type pricingService struct {
	Store    PriceStore
	Defaults config.Pricing
	Log      *zap.Logger
}

func NewPricingService(store PriceStore, internalConfig *config.InternalConfig, logger *zap.Logger) PricingService {
	return &pricingService{
		Store:    store,
		Defaults: internalConfig.Pricing,
		Log:      logger,
	}
}

// SeedDefaults writes config prices into Redis without clobbering entries an
// admin already changed.
func (s *pricingService) SeedDefaults(ctx context.Context) error {
	defaults := map[string]*responses.PriceEntry{
		priceKeyConsultationNormal: {
			Amount:           s.Defaults.ConsultationAmount,
			DiscountedAmount: s.Defaults.ConsultationDiscountedAmount,
		},
		priceKeyConsultationEuthanasia: {
			Amount:           s.Defaults.EuthanasiaAmount,
			DiscountedAmount: s.Defaults.EuthanasiaDiscountedAmount,
		},
		priceKeyEuthanasiaOnline: {
			Amount:           s.Defaults.EuthanasiaOnlineAmount,
			DiscountedAmount: s.Defaults.EuthanasiaOnlineDiscountedAmount,
		},
		priceKeyTravelDomestic: {
			Amount: s.Defaults.TravelDomesticAmount,
		},
		priceKeyTravelInternational: {
			Amount: s.Defaults.TravelInternationalAmount,
		},
	}

	for key, entry := range defaults {
		if err := s.Store.SetEntryIfAbsent(ctx, key, entry); err != nil {
			return err
		}
	}
	return nil
}

func (s *pricingService) GetConsultationPricing(ctx context.Context) (*responses.ConsultationPricing, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("pricingService.GetConsultationPricing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	normal, err := s.entryOrDefault(ctx, priceKeyConsultationNormal)
	if err != nil {
		return nil, err
	}
	euthanasia, err := s.entryOrDefault(ctx, priceKeyConsultationEuthanasia)
	if err != nil {
		return nil, err
	}
	euthanasiaOnline, err := s.entryOrDefault(ctx, priceKeyEuthanasiaOnline)
	if err != nil {
		return nil, err
	}

	return &responses.ConsultationPricing{
		Normal:           *normal,
		Euthanasia:       *euthanasia,
		EuthanasiaOnline: *euthanasiaOnline,
	}, nil
}

func (s *pricingService) UpdateConsultationPricing(ctx context.Context, request *requests.UpdateConsultationPricing) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("pricingService.UpdateConsultationPricing called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("consultation_type", request.ConsultationType),
	)

	var key string
	switch request.ConsultationType {
	case string(models.ConsultationTypeNormal):
		key = priceKeyConsultationNormal
	case string(models.ConsultationTypeEuthanasia):
		key = priceKeyConsultationEuthanasia
	case updateKeyEuthanasiaOnline:
		key = priceKeyEuthanasiaOnline
	default:
		return fmt.Errorf("unknown consultation pricing type: %s", request.ConsultationType)
	}

	entry := &responses.PriceEntry{
		Amount:           request.Amount,
		DiscountedAmount: request.DiscountedAmount,
	}
	return s.Store.SetEntry(ctx, key, entry, 0)
}

func (s *pricingService) ConsultationAmount(ctx context.Context, consultationType models.ConsultationType, euthanasiaType models.EuthanasiaType) (int64, error) {
	key := priceKeyConsultationNormal
	if consultationType == models.ConsultationTypeEuthanasia {
		if euthanasiaType == models.EuthanasiaTypeOnline {
			key = priceKeyEuthanasiaOnline
		} else {
			key = priceKeyConsultationEuthanasia
		}
	}

	entry, err := s.entryOrDefault(ctx, key)
	if err != nil {
		return 0, err
	}
	return effectiveAmount(entry), nil
}

func (s *pricingService) TravelAmount(ctx context.Context, travelType models.TravelType) (int64, error) {
	key := priceKeyTravelDomestic
	if travelType == models.TravelTypeInternational {
		key = priceKeyTravelInternational
	}

	entry, err := s.entryOrDefault(ctx, key)
	if err != nil {
		return 0, err
	}
	return effectiveAmount(entry), nil
}

// entryOrDefault falls back to config defaults when the Redis entry is
// missing, e.g. after a cache flush before the next boot reseeds it.
func (s *pricingService) entryOrDefault(ctx context.Context, key string) (*responses.PriceEntry, error) {
	entry, err := s.Store.GetEntry(ctx, key)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}

	switch key {
	case priceKeyConsultationNormal:
		return &responses.PriceEntry{Amount: s.Defaults.ConsultationAmount, DiscountedAmount: s.Defaults.ConsultationDiscountedAmount}, nil
	case priceKeyConsultationEuthanasia:
		return &responses.PriceEntry{Amount: s.Defaults.EuthanasiaAmount, DiscountedAmount: s.Defaults.EuthanasiaDiscountedAmount}, nil
	case priceKeyEuthanasiaOnline:
		return &responses.PriceEntry{Amount: s.Defaults.EuthanasiaOnlineAmount, DiscountedAmount: s.Defaults.EuthanasiaOnlineDiscountedAmount}, nil
	case priceKeyTravelDomestic:
		return &responses.PriceEntry{Amount: s.Defaults.TravelDomesticAmount}, nil
	case priceKeyTravelInternational:
		return &responses.PriceEntry{Amount: s.Defaults.TravelInternationalAmount}, nil
	}
	return &responses.PriceEntry{}, nil
}

// effectiveAmount reads a tariff entry: a zero discounted amount means no
// discount is configured and the base amount applies. Catalog-priced flows
// (bookings, travel catalog entry) charge their literal discounted amount
// instead.
func effectiveAmount(entry *responses.PriceEntry) int64 {
	if entry.DiscountedAmount > 0 {
		return entry.DiscountedAmount
	}
	return entry.Amount
}
