package routers

import (
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/services/travels"

	"github.com/go-chi/chi/v5"
)

func attachTravelRoutes(router chi.Router, middlewares *middlewares.Middlewares, travelController *travels.TravelController) {
	router.With(middlewares.AuthMiddleware).Post("/", travelController.CreateTravel)
}
