package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/reservations", reservationHandler.CreateReservation)
		r.Get("/api/reservations", reservationHandler.ListReservations)
		r.Get("/api/reservations/{id}", reservationHandler.GetReservation)
		r.Get("/api/reservations/code/{code}", reservationHandler.GetReservationByCode)
		r.Put("/api/reservations/{id}", reservationHandler.UpdateReservation)

		// Lifecycle
		r.Put("/api/reservations/{id}/confirm", reservationHandler.ConfirmReservation)
		r.Put("/api/reservations/{id}/cancel", reservationHandler.CancelReservation)
		r.Put("/api/reservations/{id}/no-show", reservationHandler.MarkNoShow)
		r.Put("/api/reservations/{id}/assign-room", reservationHandler.AssignRoom)
		r.Put("/api/reservations/{id}/check-in", reservationHandler.CheckIn)
		r.Put("/api/reservations/{id}/check-out", reservationHandler.CheckOut)

		// Service lines
		r.Post("/api/reservations/{id}/services", reservationHandler.AddService)
		r.Get("/api/reservations/{id}/services", reservationHandler.ListServiceLines)
	})
}
