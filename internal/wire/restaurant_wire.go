package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRestaurant(
	r chi.Router,
	restaurantHandler *adaptor.RestaurantHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/restaurants/{id}", restaurantHandler.GetRestaurant)
		r.Get("/api/properties/{id}/restaurants", restaurantHandler.ListRestaurants)
		r.Get("/api/restaurants/{id}/tables", restaurantHandler.ListTables)
		r.Get("/api/restaurants/{id}/tables/available", restaurantHandler.ListAvailableTables)

		r.Post("/api/table-bookings", restaurantHandler.CreateBooking)
		r.Get("/api/table-bookings", restaurantHandler.ListBookings)
		r.Get("/api/table-bookings/{id}", restaurantHandler.GetBooking)
		r.Put("/api/table-bookings/{id}/confirm", restaurantHandler.ConfirmBooking)
		r.Put("/api/table-bookings/{id}/seat", restaurantHandler.SeatBooking)
		r.Put("/api/table-bookings/{id}/complete", restaurantHandler.CompleteBooking)
		r.Put("/api/table-bookings/{id}/cancel", restaurantHandler.CancelBooking)
		r.Put("/api/table-bookings/{id}/no-show", restaurantHandler.MarkBookingNoShow)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Route("/api/admin/restaurants", func(r chi.Router) {
			r.Post("/", restaurantHandler.CreateRestaurant)
			r.Put("/{id}", restaurantHandler.UpdateRestaurant)
			r.Delete("/{id}", restaurantHandler.DeleteRestaurant)
			r.Post("/{id}/tables", restaurantHandler.CreateTable)
		})

		r.Route("/api/admin/tables", func(r chi.Router) {
			r.Put("/{id}", restaurantHandler.UpdateTable)
			r.Delete("/{id}", restaurantHandler.DeleteTable)
		})
	})
}
