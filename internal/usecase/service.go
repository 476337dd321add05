package usecase

import (
	"hotel-pms/internal/data/repository"
	"hotel-pms/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	Property    PropertyService
	Guest       GuestService
	Room        RoomService
	Rate        RateService
	Reservation ReservationService
	Payment     PaymentService
	Restaurant  RestaurantService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		Property:    NewPropertyService(repo, log),
		Guest:       NewGuestService(repo.Guest, log),
		Room:        NewRoomService(repo, log),
		Rate:        NewRateService(repo, log),
		Reservation: NewReservationService(repo, log),
		Payment:     NewPaymentService(repo, log),
		Restaurant:  NewRestaurantService(repo, log),
	}
}
