package usecase

import (
	"context"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests. Each fake stores
// entities by ID and mirrors the conditional-update semantics of the real
// queries, so guard behavior can be asserted without a database.

type testRepos struct {
	users               *fakeUserRepo
	sessions            *fakeSessionRepo
	properties          *fakePropertyRepo
	guests              *fakeGuestRepo
	roomTypes           *fakeRoomTypeRepo
	rooms               *fakeRoomRepo
	ratePlans           *fakeRatePlanRepo
	dailyRates          *fakeDailyRateRepo
	reservations        *fakeReservationRepo
	payments            *fakePaymentRepo
	services            *fakeServiceRepo
	propertyServices    *fakePropertyServiceRepo
	reservationServices *fakeReservationServiceRepo
	restaurants         *fakeRestaurantRepo
	tables              *fakeRestaurantTableRepo
	tableBookings       *fakeTableBookingRepo
}

func newTestRepos() (*repository.Repository, *testRepos) {
	fakes := &testRepos{
		users:               &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		sessions:            &fakeSessionRepo{sessions: map[string]*entity.Session{}},
		properties:          &fakePropertyRepo{properties: map[uuid.UUID]*entity.Property{}},
		guests:              &fakeGuestRepo{guests: map[uuid.UUID]*entity.Guest{}},
		roomTypes:           &fakeRoomTypeRepo{roomTypes: map[uuid.UUID]*entity.RoomType{}},
		rooms:               &fakeRoomRepo{rooms: map[uuid.UUID]*entity.Room{}},
		ratePlans:           &fakeRatePlanRepo{plans: map[uuid.UUID]*entity.RatePlan{}},
		dailyRates:          &fakeDailyRateRepo{},
		reservations:        &fakeReservationRepo{reservations: map[uuid.UUID]*entity.Reservation{}},
		payments:            &fakePaymentRepo{payments: map[uuid.UUID]*entity.Payment{}},
		services:            &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{}},
		propertyServices:    &fakePropertyServiceRepo{offerings: map[uuid.UUID]*entity.PropertyService{}},
		reservationServices: &fakeReservationServiceRepo{},
		restaurants:         &fakeRestaurantRepo{restaurants: map[uuid.UUID]*entity.Restaurant{}},
		tables:              &fakeRestaurantTableRepo{tables: map[uuid.UUID]*entity.RestaurantTable{}},
		tableBookings:       &fakeTableBookingRepo{bookings: map[uuid.UUID]*entity.TableBooking{}},
	}
	fakes.payments.reservations = fakes.reservations

	repo := &repository.Repository{
		User:               fakes.users,
		Session:            fakes.sessions,
		Property:           fakes.properties,
		Guest:              fakes.guests,
		RoomType:           fakes.roomTypes,
		Room:               fakes.rooms,
		RatePlan:           fakes.ratePlans,
		DailyRate:          fakes.dailyRates,
		Reservation:        fakes.reservations,
		Payment:            fakes.payments,
		Service:            fakes.services,
		PropertyService:    fakes.propertyServices,
		ReservationService: fakes.reservationServices,
		Restaurant:         fakes.restaurants,
		RestaurantTable:    fakes.tables,
		TableBooking:       fakes.tableBookings,
	}

	return repo, fakes
}

// ==================== USER / SESSION ====================

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
	revoked  []string
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	f.revoked = append(f.revoked, token)
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) RevokeAllUserSessions(_ context.Context, userID uuid.UUID) error {
	now := time.Now()
	for _, session := range f.sessions {
		if session.UserID == userID {
			session.RevokedAt = &now
		}
	}
	return nil
}

// ==================== PROPERTY / GUEST ====================

type fakePropertyRepo struct {
	properties map[uuid.UUID]*entity.Property
}

func (f *fakePropertyRepo) Create(_ context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Property, error) {
	return f.properties[id], nil
}

func (f *fakePropertyRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Property, error) {
	var out []*entity.Property
	for _, property := range f.properties {
		out = append(out, property)
	}
	return out, nil
}

func (f *fakePropertyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.properties)), nil
}

func (f *fakePropertyRepo) Update(_ context.Context, property *entity.Property) error {
	f.properties[property.ID] = property
	return nil
}

type fakeGuestRepo struct {
	guests map[uuid.UUID]*entity.Guest
}

func (f *fakeGuestRepo) Create(_ context.Context, guest *entity.Guest) error {
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeGuestRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Guest, error) {
	return f.guests[id], nil
}

func (f *fakeGuestRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.Guest, error) {
	var out []*entity.Guest
	for _, guest := range f.guests {
		out = append(out, guest)
	}
	return out, nil
}

func (f *fakeGuestRepo) Count(_ context.Context, search string) (int64, error) {
	return int64(len(f.guests)), nil
}

func (f *fakeGuestRepo) Update(_ context.Context, guest *entity.Guest) error {
	f.guests[guest.ID] = guest
	return nil
}

func (f *fakeGuestRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.guests, id)
	return nil
}

// ==================== ROOMS ====================

type fakeRoomTypeRepo struct {
	roomTypes map[uuid.UUID]*entity.RoomType
}

func (f *fakeRoomTypeRepo) Create(_ context.Context, roomType *entity.RoomType) error {
	f.roomTypes[roomType.ID] = roomType
	return nil
}

func (f *fakeRoomTypeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RoomType, error) {
	return f.roomTypes[id], nil
}

func (f *fakeRoomTypeRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*entity.RoomType, error) {
	var out []*entity.RoomType
	for _, roomType := range f.roomTypes {
		if roomType.PropertyID == propertyID {
			out = append(out, roomType)
		}
	}
	return out, nil
}

type fakeRoomRepo struct {
	rooms map[uuid.UUID]*entity.Room

	// availableForStay is returned from FindAvailableForStay when set.
	availableForStay []*entity.Room
	housekeeping     map[uuid.UUID]entity.HousekeepingStatus
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.rooms {
		if room.PropertyID == propertyID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) CountByPropertyID(_ context.Context, propertyID uuid.UUID) (int64, error) {
	rooms, _ := f.FindByPropertyID(context.Background(), propertyID, 0, 0)
	return int64(len(rooms)), nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.rooms[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.rooms, id)
	return nil
}

func (f *fakeRoomRepo) FindAvailableForStay(_ context.Context, propertyID, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	return f.availableForStay, nil
}

func (f *fakeRoomRepo) UpdateStatusIf(_ context.Context, roomID uuid.UUID, from, to entity.RoomStatus) (bool, error) {
	room, ok := f.rooms[roomID]
	if !ok || room.Status != from {
		return false, nil
	}
	room.Status = to
	return true, nil
}

func (f *fakeRoomRepo) UpdateHousekeeping(_ context.Context, roomID uuid.UUID, status entity.HousekeepingStatus) error {
	if f.housekeeping == nil {
		f.housekeeping = map[uuid.UUID]entity.HousekeepingStatus{}
	}
	f.housekeeping[roomID] = status
	if room, ok := f.rooms[roomID]; ok {
		room.Housekeeping = status
	}
	return nil
}

// ==================== RATES ====================

type fakeRatePlanRepo struct {
	plans map[uuid.UUID]*entity.RatePlan
}

func (f *fakeRatePlanRepo) Create(_ context.Context, plan *entity.RatePlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeRatePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RatePlan, error) {
	return f.plans[id], nil
}

func (f *fakeRatePlanRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.RatePlan, error) {
	var out []*entity.RatePlan
	for _, plan := range f.plans {
		if plan.PropertyID == propertyID {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (f *fakeRatePlanRepo) CountByPropertyID(_ context.Context, propertyID uuid.UUID) (int64, error) {
	plans, _ := f.FindByPropertyID(context.Background(), propertyID, 0, 0)
	return int64(len(plans)), nil
}

func (f *fakeRatePlanRepo) Update(_ context.Context, plan *entity.RatePlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeRatePlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

type fakeDailyRateRepo struct {
	rates    []*entity.DailyRate
	upserted []*entity.DailyRate

	rangeFrom time.Time
	rangeTo   time.Time
}

func (f *fakeDailyRateRepo) Create(_ context.Context, rate *entity.DailyRate) error {
	f.rates = append(f.rates, rate)
	return nil
}

func (f *fakeDailyRateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.DailyRate, error) {
	for _, rate := range f.rates {
		if rate.ID == id {
			return rate, nil
		}
	}
	return nil, nil
}

func (f *fakeDailyRateRepo) FindByPlanAndDate(_ context.Context, ratePlanID uuid.UUID, date time.Time) (*entity.DailyRate, error) {
	for _, rate := range f.rates {
		if rate.RatePlanID == ratePlanID && rate.RateDate.Equal(date) {
			return rate, nil
		}
	}
	return nil, nil
}

func (f *fakeDailyRateRepo) FindByPlanAndRange(_ context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]*entity.DailyRate, error) {
	f.rangeFrom = from
	f.rangeTo = to

	var out []*entity.DailyRate
	for _, rate := range f.rates {
		if rate.RatePlanID != ratePlanID {
			continue
		}
		if rate.RateDate.Before(from) || rate.RateDate.After(to) {
			continue
		}
		out = append(out, rate)
	}
	return out, nil
}

func (f *fakeDailyRateRepo) Update(_ context.Context, rate *entity.DailyRate) error {
	for i, existing := range f.rates {
		if existing.ID == rate.ID {
			f.rates[i] = rate
			return nil
		}
	}
	return nil
}

func (f *fakeDailyRateRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, rate := range f.rates {
		if rate.ID == id {
			f.rates = append(f.rates[:i], f.rates[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeDailyRateRepo) UpsertBatch(_ context.Context, rates []*entity.DailyRate) error {
	f.upserted = rates
	f.rates = append(f.rates, rates...)
	return nil
}

// ==================== RESERVATIONS ====================

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *entity.Reservation) error {
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.reservations[id], nil
}

func (f *fakeReservationRepo) FindByConfirmationCode(_ context.Context, code string) (*entity.Reservation, error) {
	for _, reservation := range f.reservations {
		if reservation.ConfirmationCode == code {
			return reservation, nil
		}
	}
	return nil, nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context, filter repository.ReservationFilter, limit, offset int) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, reservation := range f.reservations {
		if filter.PropertyID != nil && reservation.PropertyID != *filter.PropertyID {
			continue
		}
		if filter.GuestID != nil && reservation.GuestID != *filter.GuestID {
			continue
		}
		if filter.Status != nil && reservation.Status != *filter.Status {
			continue
		}
		out = append(out, reservation)
	}
	return out, nil
}

func (f *fakeReservationRepo) Count(ctx context.Context, filter repository.ReservationFilter) (int64, error) {
	reservations, _ := f.FindAll(ctx, filter, 0, 0)
	return int64(len(reservations)), nil
}

func (f *fakeReservationRepo) Update(_ context.Context, reservation *entity.Reservation) error {
	f.reservations[reservation.ID] = reservation
	return nil
}

func (f *fakeReservationRepo) AssignRoom(_ context.Context, reservationID, roomID uuid.UUID, allowed []entity.ReservationStatus) (bool, error) {
	reservation, ok := f.reservations[reservationID]
	if !ok {
		return false, nil
	}
	for _, status := range allowed {
		if reservation.Status == status {
			reservation.AssignedRoomID = &roomID
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) TransitionStatus(_ context.Context, reservationID uuid.UUID, from []entity.ReservationStatus, to entity.ReservationStatus) (bool, error) {
	reservation, ok := f.reservations[reservationID]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if reservation.Status == status {
			reservation.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeReservationRepo) UpdatePaymentTotals(_ context.Context, reservationID uuid.UUID, amountPaid float64, paymentStatus entity.PaymentState) error {
	if reservation, ok := f.reservations[reservationID]; ok {
		reservation.AmountPaid = amountPaid
		reservation.PaymentStatus = paymentStatus
	}
	return nil
}

func (f *fakeReservationRepo) UpdateServiceTotals(_ context.Context, reservationID uuid.UUID, serviceAmount, totalAmount float64) error {
	if reservation, ok := f.reservations[reservationID]; ok {
		reservation.ServiceAmount = serviceAmount
		reservation.TotalAmount = totalAmount
	}
	return nil
}

// ==================== PAYMENTS ====================

type fakePaymentRepo struct {
	payments     map[uuid.UUID]*entity.Payment
	reservations *fakeReservationRepo
}

func (f *fakePaymentRepo) CreateCapped(_ context.Context, payment *entity.Payment) (bool, error) {
	reservation := f.reservations.reservations[payment.ReservationID]
	if reservation == nil {
		return false, nil
	}

	var paid float64
	for _, p := range f.payments {
		if p.ReservationID != payment.ReservationID {
			continue
		}
		switch p.Status {
		case entity.PaymentStatusCaptured:
			paid += p.Amount
		case entity.PaymentStatusRefunded:
			paid += p.Amount - p.RefundedAmount
		}
	}
	if paid+payment.Amount > reservation.TotalAmount {
		return false, nil
	}

	f.payments[payment.ID] = payment
	return true, nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByReservationID(_ context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, payment := range f.payments {
		if payment.ReservationID == reservationID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkCaptured(_ context.Context, paymentID uuid.UUID, paidAt time.Time) (bool, error) {
	payment, ok := f.payments[paymentID]
	if !ok || payment.Status != entity.PaymentStatusAuthorized {
		return false, nil
	}
	payment.Status = entity.PaymentStatusCaptured
	payment.PaidAt = &paidAt
	return true, nil
}

func (f *fakePaymentRepo) MarkRefunded(_ context.Context, paymentID uuid.UUID, refundedAmount float64) (bool, error) {
	payment, ok := f.payments[paymentID]
	if !ok || payment.Status != entity.PaymentStatusCaptured {
		return false, nil
	}
	payment.Status = entity.PaymentStatusRefunded
	payment.RefundedAmount = refundedAmount
	return true, nil
}

func (f *fakePaymentRepo) MarkVoided(_ context.Context, paymentID uuid.UUID) (bool, error) {
	payment, ok := f.payments[paymentID]
	if !ok || payment.Status != entity.PaymentStatusAuthorized {
		return false, nil
	}
	payment.Status = entity.PaymentStatusVoided
	return true, nil
}

// ==================== SERVICE CATALOG ====================

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindAll(_ context.Context) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, service := range f.services {
		out = append(out, service)
	}
	return out, nil
}

type fakePropertyServiceRepo struct {
	offerings map[uuid.UUID]*entity.PropertyService
}

func (f *fakePropertyServiceRepo) Create(_ context.Context, offering *entity.PropertyService) error {
	f.offerings[offering.ID] = offering
	return nil
}

func (f *fakePropertyServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.PropertyService, error) {
	return f.offerings[id], nil
}

func (f *fakePropertyServiceRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID) ([]*entity.PropertyService, error) {
	var out []*entity.PropertyService
	for _, offering := range f.offerings {
		if offering.PropertyID == propertyID {
			out = append(out, offering)
		}
	}
	return out, nil
}

type fakeReservationServiceRepo struct {
	lines []*entity.ReservationService
}

func (f *fakeReservationServiceRepo) Create(_ context.Context, line *entity.ReservationService) error {
	f.lines = append(f.lines, line)
	return nil
}

func (f *fakeReservationServiceRepo) FindByReservationID(_ context.Context, reservationID uuid.UUID) ([]*entity.ReservationService, error) {
	var out []*entity.ReservationService
	for _, line := range f.lines {
		if line.ReservationID == reservationID {
			out = append(out, line)
		}
	}
	return out, nil
}

func (f *fakeReservationServiceRepo) SumByReservationID(_ context.Context, reservationID uuid.UUID) (float64, error) {
	var total float64
	for _, line := range f.lines {
		if line.ReservationID == reservationID {
			total += line.TotalPrice
		}
	}
	return total, nil
}

// ==================== RESTAURANTS ====================

type fakeRestaurantRepo struct {
	restaurants map[uuid.UUID]*entity.Restaurant
}

func (f *fakeRestaurantRepo) Create(_ context.Context, restaurant *entity.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return f.restaurants[id], nil
}

func (f *fakeRestaurantRepo) FindByPropertyID(_ context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error) {
	var out []*entity.Restaurant
	for _, restaurant := range f.restaurants {
		if restaurant.PropertyID == propertyID {
			out = append(out, restaurant)
		}
	}
	return out, nil
}

func (f *fakeRestaurantRepo) CountByPropertyID(_ context.Context, propertyID uuid.UUID) (int64, error) {
	restaurants, _ := f.FindByPropertyID(context.Background(), propertyID, 0, 0)
	return int64(len(restaurants)), nil
}

func (f *fakeRestaurantRepo) Update(_ context.Context, restaurant *entity.Restaurant) error {
	f.restaurants[restaurant.ID] = restaurant
	return nil
}

func (f *fakeRestaurantRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.restaurants, id)
	return nil
}

type fakeRestaurantTableRepo struct {
	tables    map[uuid.UUID]*entity.RestaurantTable
	available []*entity.RestaurantTable
}

func (f *fakeRestaurantTableRepo) Create(_ context.Context, table *entity.RestaurantTable) error {
	f.tables[table.ID] = table
	return nil
}

func (f *fakeRestaurantTableRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.RestaurantTable, error) {
	return f.tables[id], nil
}

func (f *fakeRestaurantTableRepo) FindByRestaurantID(_ context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantTable, error) {
	var out []*entity.RestaurantTable
	for _, table := range f.tables {
		if table.RestaurantID == restaurantID {
			out = append(out, table)
		}
	}
	return out, nil
}

func (f *fakeRestaurantTableRepo) Update(_ context.Context, table *entity.RestaurantTable) error {
	f.tables[table.ID] = table
	return nil
}

func (f *fakeRestaurantTableRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.tables, id)
	return nil
}

func (f *fakeRestaurantTableRepo) FindAvailable(_ context.Context, restaurantID uuid.UUID, start, end time.Time, partySize int) ([]*entity.RestaurantTable, error) {
	return f.available, nil
}

func (f *fakeRestaurantTableRepo) UpdateStatusIf(_ context.Context, tableID uuid.UUID, from, to entity.TableStatus) (bool, error) {
	table, ok := f.tables[tableID]
	if !ok || table.Status != from {
		return false, nil
	}
	table.Status = to
	return true, nil
}

type fakeTableBookingRepo struct {
	bookings map[uuid.UUID]*entity.TableBooking
	overlap  bool
	seatFail bool
}

func (f *fakeTableBookingRepo) Create(_ context.Context, booking *entity.TableBooking) error {
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeTableBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TableBooking, error) {
	return f.bookings[id], nil
}

func (f *fakeTableBookingRepo) FindAll(_ context.Context, filter repository.TableBookingFilter, limit, offset int) ([]*entity.TableBooking, error) {
	var out []*entity.TableBooking
	for _, booking := range f.bookings {
		if filter.RestaurantID != nil && booking.RestaurantID != *filter.RestaurantID {
			continue
		}
		if filter.GuestID != nil && booking.GuestID != *filter.GuestID {
			continue
		}
		if filter.Status != nil && booking.Status != *filter.Status {
			continue
		}
		out = append(out, booking)
	}
	return out, nil
}

func (f *fakeTableBookingRepo) Count(ctx context.Context, filter repository.TableBookingFilter) (int64, error) {
	bookings, _ := f.FindAll(ctx, filter, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeTableBookingRepo) TransitionStatus(_ context.Context, bookingID uuid.UUID, from []entity.TableBookingStatus, to entity.TableBookingStatus) (bool, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return false, nil
	}
	for _, status := range from {
		if booking.Status == status {
			booking.Status = to
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeTableBookingRepo) Seat(_ context.Context, bookingID, tableID uuid.UUID) (bool, error) {
	if f.seatFail {
		return false, nil
	}
	booking, ok := f.bookings[bookingID]
	if !ok || booking.Status != entity.TableBookingStatusConfirmed {
		return false, nil
	}
	booking.Status = entity.TableBookingStatusSeated
	booking.AssignedTableID = &tableID
	return true, nil
}

func (f *fakeTableBookingRepo) HasOverlap(_ context.Context, tableID uuid.UUID, start, end time.Time) (bool, error) {
	return f.overlap, nil
}
