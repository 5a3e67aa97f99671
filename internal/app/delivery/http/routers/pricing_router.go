package routers

import (
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/services/pricing"

	"github.com/go-chi/chi/v5"
)

func attachPricingRoutes(router chi.Router, middlewares *middlewares.Middlewares, pricingController *pricing.PricingController) {
	router.Get("/consultations", pricingController.GetConsultationPricing)
	router.With(middlewares.AuthMiddleware).Put("/consultations", pricingController.UpdateConsultationPricing)
}
