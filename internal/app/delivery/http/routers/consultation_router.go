package routers

import (
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/services/consultations"

	"github.com/go-chi/chi/v5"
)

func attachConsultationRoutes(router chi.Router, middlewares *middlewares.Middlewares, consultationController *consultations.ConsultationController) {
	router.With(middlewares.AuthMiddleware).Post("/", consultationController.CreateConsultation)
	router.With(middlewares.AuthMiddleware).Put("/", consultationController.UpdateConsultation)
}
