package repository

import (
	"hotel-pms/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User               UserRepository
	Session            SessionRepository
	Property           PropertyRepository
	Guest              GuestRepository
	RoomType           RoomTypeRepository
	Room               RoomRepository
	RatePlan           RatePlanRepository
	DailyRate          DailyRateRepository
	Reservation        ReservationRepository
	Payment            PaymentRepository
	Service            ServiceRepository
	PropertyService    PropertyServiceRepository
	ReservationService ReservationServiceRepository
	Restaurant         RestaurantRepository
	RestaurantTable    RestaurantTableRepository
	TableBooking       TableBookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:               NewUserRepository(db, log),
		Session:            NewSessionRepository(db, log),
		Property:           NewPropertyRepository(db, log),
		Guest:              NewGuestRepository(db, log),
		RoomType:           NewRoomTypeRepository(db, log),
		Room:               NewRoomRepository(db, log),
		RatePlan:           NewRatePlanRepository(db, log),
		DailyRate:          NewDailyRateRepository(db, log),
		Reservation:        NewReservationRepository(db, log),
		Payment:            NewPaymentRepository(db, log),
		Service:            NewServiceRepository(db, log),
		PropertyService:    NewPropertyServiceRepository(db, log),
		ReservationService: NewReservationServiceRepository(db, log),
		Restaurant:         NewRestaurantRepository(db, log),
		RestaurantTable:    NewRestaurantTableRepository(db, log),
		TableBooking:       NewTableBookingRepository(db, log),
	}
}
