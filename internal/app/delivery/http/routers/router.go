package routers

import (
	"time"

	"petfirst-service/internal/app/config"
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/services/bookings"
	"petfirst-service/internal/app/services/consultations"
	"petfirst-service/internal/app/services/pricing"
	"petfirst-service/internal/app/services/travels"
	"petfirst-service/internal/app/services/webhook"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	bookingController *bookings.BookingController,
	consultationController *consultations.ConsultationController,
	travelController *travels.TravelController,
	pricingController *pricing.PricingController,
	webhookController *webhook.WebhookController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.Metrics)
	router.Use(middlewares.ErrorHandler)

	router.Handle("/metrics", promhttp.Handler())

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, middlewares, bookingController)
		})

		r.Route("/consultations", func(r chi.Router) {
			attachConsultationRoutes(r, middlewares, consultationController)
		})

		r.Route("/travels", func(r chi.Router) {
			attachTravelRoutes(r, middlewares, travelController)
		})

		r.Route("/pricing", func(r chi.Router) {
			attachPricingRoutes(r, middlewares, pricingController)
		})

		r.Route("/webhook", func(r chi.Router) {
			attachWebhookRoutes(r, webhookController)
		})
	})
}
