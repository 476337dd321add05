package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProperty(
	r chi.Router,
	propertyHandler *adaptor.PropertyHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/properties", propertyHandler.ListProperties)
		r.Get("/api/properties/{id}", propertyHandler.GetProperty)
		r.Get("/api/properties/{id}/services", propertyHandler.ListPropertyServices)
		r.Get("/api/services", propertyHandler.ListServices)
	})

	// Admin routes
	r.Route("/api/admin/properties", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", propertyHandler.CreateProperty)
		r.Put("/{id}", propertyHandler.UpdateProperty)
		r.Post("/{id}/services", propertyHandler.AttachPropertyService)
	})

	r.Route("/api/admin/services", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/", propertyHandler.CreateService)
	})
}
