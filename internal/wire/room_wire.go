package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/room-types/{id}", roomHandler.GetRoomType)
		r.Get("/api/properties/{id}/room-types", roomHandler.ListRoomTypes)
		r.Get("/api/rooms/{id}", roomHandler.GetRoom)
		r.Get("/api/properties/{id}/rooms", roomHandler.ListRooms)
		r.Get("/api/properties/{id}/rooms/available", roomHandler.ListAvailableRooms)
		r.Put("/api/rooms/{id}/housekeeping", roomHandler.UpdateHousekeeping)
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/room-types", roomHandler.CreateRoomType)
		r.Post("/api/admin/rooms", roomHandler.CreateRoom)
		r.Put("/api/admin/rooms/{id}", roomHandler.UpdateRoom)
		r.Delete("/api/admin/rooms/{id}", roomHandler.DeleteRoom)
	})
}
