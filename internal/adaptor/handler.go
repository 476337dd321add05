package adaptor

import (
	"net/http"
	"strings"

	"hotel-pms/internal/usecase"
	"hotel-pms/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Property    *PropertyHandler
	Guest       *GuestHandler
	Room        *RoomHandler
	Rate        *RateHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
	Restaurant  *RestaurantHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Property:    NewPropertyHandler(service.Property, log),
		Guest:       NewGuestHandler(service.Guest, log),
		Room:        NewRoomHandler(service.Room, log),
		Rate:        NewRateHandler(service.Rate, log),
		Reservation: NewReservationHandler(service.Reservation, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Restaurant:  NewRestaurantHandler(service.Restaurant, log),
	}
}

// handleServiceError maps service errors to HTTP responses by message shape.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid credentials"),
		strings.Contains(errMsg, "deactivated"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "must be"),
		strings.Contains(errMsg, "exceeds"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	case strings.Contains(errMsg, "unauthorized"):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "cannot"),
		strings.Contains(errMsg, "already"),
		strings.Contains(errMsg, "not available"),
		strings.Contains(errMsg, "not active"),
		strings.Contains(errMsg, "closed for sale"),
		strings.Contains(errMsg, "no rooms left"),
		strings.Contains(errMsg, "is occupied"):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "does not belong"),
		strings.Contains(errMsg, "does not cover"),
		strings.Contains(errMsg, "outside opening hours"),
		strings.Contains(errMsg, "no room assigned"),
		strings.Contains(errMsg, "in the past"):
		log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
