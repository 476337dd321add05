package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGuest(
	r chi.Router,
	guestHandler *adaptor.GuestHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/guests", guestHandler.CreateGuest)
		r.Get("/api/guests", guestHandler.ListGuests)
		r.Get("/api/guests/{id}", guestHandler.GetGuest)
		r.Put("/api/guests/{id}", guestHandler.UpdateGuest)
	})

	// Admin-only delete (guest profiles carry ID documents)
	r.Route("/api/admin/guests", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Delete("/{id}", guestHandler.DeleteGuest)
	})
}
