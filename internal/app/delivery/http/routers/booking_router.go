package routers

import (
	"petfirst-service/internal/app/delivery/http/middlewares"
	"petfirst-service/internal/app/services/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, middlewares *middlewares.Middlewares, bookingController *bookings.BookingController) {
	router.With(middlewares.AuthMiddleware).Post("/", bookingController.CreateBooking)
}
