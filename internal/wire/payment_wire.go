package wire

import (
	"hotel-pms/internal/adaptor"
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/middleware"
	"hotel-pms/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		r.Post("/api/payments", paymentHandler.CreatePayment)
		r.Get("/api/payments/{id}", paymentHandler.GetPayment)
		r.Get("/api/reservations/{id}/payments", paymentHandler.ListPayments)
		r.Put("/api/payments/{id}/capture", paymentHandler.CapturePayment)
	})

	// Refunds and voids are admin-only
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		r.Put("/api/payments/{id}/refund", paymentHandler.RefundPayment)
		r.Put("/api/payments/{id}/void", paymentHandler.VoidPayment)
	})
}
