package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRate(
	r chi.Router,
	rateHandler *adaptor.RateHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// Staff routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Get("/api/rate-plans/{id}", rateHandler.GetRatePlan)
		r.Get("/api/properties/{id}/rate-plans", rateHandler.ListRatePlans)
		r.Get("/api/rate-plans/{id}/daily-rates", rateHandler.ListDailyRates)
		r.Get("/api/rate-plans/{id}/quote", rateHandler.Quote)
	})

	// Admin routes (rate management changes revenue)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Post("/api/admin/rate-plans", rateHandler.CreateRatePlan)
		r.Put("/api/admin/rate-plans/{id}", rateHandler.UpdateRatePlan)
		r.Delete("/api/admin/rate-plans/{id}", rateHandler.DeleteRatePlan)

		r.Post("/api/admin/daily-rates", rateHandler.CreateDailyRate)
		r.Post("/api/admin/daily-rates/bulk", rateHandler.BulkUpsertDailyRates)
		r.Put("/api/admin/daily-rates/{id}", rateHandler.UpdateDailyRate)
		r.Delete("/api/admin/daily-rates/{id}", rateHandler.DeleteDailyRate)
	})
}
