package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/internal/dto/request"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type stayFixture struct {
	property *entity.Property
	guest    *entity.Guest
	roomType *entity.RoomType
	plan     *entity.RatePlan
}

func seedStay(fakes *testRepos) stayFixture {
	now := time.Now()

	property := &entity.Property{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:     "Harbor Hotel",
		Currency: "USD",
		IsActive: true,
	}
	fakes.properties.properties[property.ID] = property

	guest := &entity.Guest{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName: "Ana",
		LastName:  "Silva",
	}
	fakes.guests.guests[guest.ID] = guest

	roomType := &entity.RoomType{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID:  property.ID,
		Name:        "Deluxe",
		MaxAdults:   2,
		MaxChildren: 1,
	}
	fakes.roomTypes.roomTypes[roomType.ID] = roomType

	plan := &entity.RatePlan{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID: property.ID,
		RoomTypeID: roomType.ID,
		Name:       "Flexible",
		BasePrice:  100,
		Currency:   "USD",
		IsActive:   true,
	}
	fakes.ratePlans.plans[plan.ID] = plan

	return stayFixture{property: property, guest: guest, roomType: roomType, plan: plan}
}

func seedReservation(fakes *testRepos, fx stayFixture, status entity.ReservationStatus) *entity.Reservation {
	now := time.Now()
	checkIn, _ := time.Parse("2006-01-02", "2026-10-01")
	checkOut, _ := time.Parse("2006-01-02", "2026-10-03")

	reservation := &entity.Reservation{
		Base:             entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID:       fx.property.ID,
		GuestID:          fx.guest.ID,
		RoomTypeID:       fx.roomType.ID,
		RatePlanID:       fx.plan.ID,
		ConfirmationCode: "BK0000000000000000",
		Channel:          entity.ChannelWebsite,
		Status:           status,
		PaymentStatus:    entity.PaymentStateUnpaid,
		CheckInDate:      checkIn,
		CheckOutDate:     checkOut,
		Adults:           2,
		TotalAmount:      200,
		Currency:         "USD",
	}
	fakes.reservations.reservations[reservation.ID] = reservation
	return reservation
}

func createReservationRequest(fx stayFixture) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		PropertyID:   fx.property.ID.String(),
		GuestID:      fx.guest.ID.String(),
		RoomTypeID:   fx.roomType.ID.String(),
		RatePlanID:   fx.plan.ID.String(),
		CheckInDate:  "2026-10-01",
		CheckOutDate: "2026-10-03",
		Adults:       2,
		Children:     1,
		Channel:      "website",
	}
}

func TestReservationService_CreateReservation(t *testing.T) {
	t.Run("creates pending reservation priced from the rate plan", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)

		req := createReservationRequest(fx)
		req.TaxAmount = 20
		req.Discount = 10

		resp, err := svc.CreateReservation(context.Background(), req)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.Status != entity.ReservationStatusPending {
			t.Fatalf("expected status pending, got %s", resp.Status)
		}
		if resp.PaymentStatus != entity.PaymentStateUnpaid {
			t.Fatalf("expected payment status unpaid, got %s", resp.PaymentStatus)
		}
		// Two nights at 100, plus 20 tax, minus 10 discount.
		if resp.TotalAmount != 210 {
			t.Fatalf("expected total 210, got %.2f", resp.TotalAmount)
		}
		if resp.Currency != "USD" {
			t.Fatalf("expected plan currency, got %s", resp.Currency)
		}
		if !strings.HasPrefix(resp.ConfirmationCode, "BK") {
			t.Fatalf("expected BK confirmation code, got %s", resp.ConfirmationCode)
		}
		if resp.GuestName != "Ana Silva" {
			t.Fatalf("expected enriched guest name, got %q", resp.GuestName)
		}
	})

	t.Run("rejects party exceeding room type capacity", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)

		req := createReservationRequest(fx)
		req.Adults = 3

		_, err := svc.CreateReservation(context.Background(), req)
		if err == nil || !strings.Contains(err.Error(), "exceeds room type capacity") {
			t.Fatalf("expected capacity error, got %v", err)
		}
	})

	t.Run("rejects rate plan covering a different room type", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		fx.plan.RoomTypeID = uuid.New()

		_, err := svc.CreateReservation(context.Background(), createReservationRequest(fx))
		if err == nil || !strings.Contains(err.Error(), "does not cover") {
			t.Fatalf("expected coverage error, got %v", err)
		}
	})

	t.Run("rejects inactive property", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		fx.property.IsActive = false

		_, err := svc.CreateReservation(context.Background(), createReservationRequest(fx))
		if err == nil || !strings.Contains(err.Error(), "not active") {
			t.Fatalf("expected inactive property error, got %v", err)
		}
	})

	t.Run("rejects stay crossing a stop-sell night", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		seedDailyRate(fakes, fx.plan.ID, "2026-10-02", 100, nil, true)

		_, err := svc.CreateReservation(context.Background(), createReservationRequest(fx))
		if err == nil || !strings.Contains(err.Error(), "closed for sale") {
			t.Fatalf("expected stop-sell error, got %v", err)
		}
	})

	t.Run("rejects discount exceeding the total", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)

		req := createReservationRequest(fx)
		req.Discount = 500

		_, err := svc.CreateReservation(context.Background(), req)
		if err == nil || !strings.Contains(err.Error(), "discount exceeds") {
			t.Fatalf("expected discount error, got %v", err)
		}
	})
}

func TestReservationService_Lifecycle(t *testing.T) {
	t.Run("confirm moves pending to confirmed exactly once", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusPending)

		if err := svc.ConfirmReservation(context.Background(), reservation.ID.String()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.Status != entity.ReservationStatusConfirmed {
			t.Fatalf("expected confirmed, got %s", reservation.Status)
		}

		err := svc.ConfirmReservation(context.Background(), reservation.ID.String())
		if err == nil || !strings.Contains(err.Error(), "cannot be confirmed") {
			t.Fatalf("expected transition error, got %v", err)
		}
	})

	t.Run("cancel rejects in-house reservations", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusCheckedIn)

		err := svc.CancelReservation(context.Background(), reservation.ID.String())
		if err == nil || !strings.Contains(err.Error(), "cannot be cancelled") {
			t.Fatalf("expected transition error, got %v", err)
		}
		if reservation.Status != entity.ReservationStatusCheckedIn {
			t.Fatalf("status changed unexpectedly to %s", reservation.Status)
		}
	})

	t.Run("update is rejected after check-in", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusCheckedIn)

		_, err := svc.UpdateReservation(context.Background(), reservation.ID.String(), &request.UpdateReservationRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-05",
			Adults:       2,
			Channel:      "website",
		})
		if err == nil || !strings.Contains(err.Error(), "cannot be modified") {
			t.Fatalf("expected modification error, got %v", err)
		}
	})

	t.Run("update rejects party exceeding room type capacity", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusPending)

		_, err := svc.UpdateReservation(context.Background(), reservation.ID.String(), &request.UpdateReservationRequest{
			CheckInDate:  "2026-10-01",
			CheckOutDate: "2026-10-03",
			Adults:       fx.roomType.MaxAdults + 1,
			Channel:      "website",
		})
		if err == nil || !strings.Contains(err.Error(), "exceeds room type capacity") {
			t.Fatalf("expected capacity error, got %v", err)
		}
		if reservation.Adults == fx.roomType.MaxAdults+1 {
			t.Fatalf("party size was updated despite the capacity error")
		}
	})
}

func TestReservationService_AssignRoom(t *testing.T) {
	newRoom := func(fx stayFixture, roomTypeID uuid.UUID) *entity.Room {
		now := time.Now()
		return &entity.Room{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			PropertyID:   fx.property.ID,
			RoomTypeID:   roomTypeID,
			RoomNumber:   "101",
			Status:       entity.RoomStatusAvailable,
			Housekeeping: entity.HousekeepingClean,
		}
	}

	t.Run("assigns an available room of the reserved type", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusConfirmed)

		room := newRoom(fx, fx.roomType.ID)
		fakes.rooms.rooms[room.ID] = room
		fakes.rooms.availableForStay = []*entity.Room{room}

		err := svc.AssignRoom(context.Background(), reservation.ID.String(), &request.AssignRoomRequest{RoomID: room.ID.String()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.AssignedRoomID == nil || *reservation.AssignedRoomID != room.ID {
			t.Fatalf("expected room assignment recorded")
		}
	})

	t.Run("rejects room of a different type", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusConfirmed)

		room := newRoom(fx, uuid.New())
		fakes.rooms.rooms[room.ID] = room

		err := svc.AssignRoom(context.Background(), reservation.ID.String(), &request.AssignRoomRequest{RoomID: room.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "not of the reserved room type") {
			t.Fatalf("expected room type error, got %v", err)
		}
	})

	t.Run("rejects room not free for the stay window", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusConfirmed)

		room := newRoom(fx, fx.roomType.ID)
		fakes.rooms.rooms[room.ID] = room
		fakes.rooms.availableForStay = nil

		err := svc.AssignRoom(context.Background(), reservation.ID.String(), &request.AssignRoomRequest{RoomID: room.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "not available for the stay") {
			t.Fatalf("expected availability error, got %v", err)
		}
	})
}

func TestReservationService_CheckInCheckOut(t *testing.T) {
	seedAssigned := func(fakes *testRepos, fx stayFixture, status entity.ReservationStatus, roomStatus entity.RoomStatus) (*entity.Reservation, *entity.Room) {
		reservation := seedReservation(fakes, fx, status)
		now := time.Now()
		room := &entity.Room{
			Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			PropertyID:   fx.property.ID,
			RoomTypeID:   fx.roomType.ID,
			RoomNumber:   "101",
			Status:       roomStatus,
			Housekeeping: entity.HousekeepingClean,
		}
		fakes.rooms.rooms[room.ID] = room
		reservation.AssignedRoomID = &room.ID
		return reservation, room
	}

	t.Run("check-in claims the room and transitions the reservation", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation, room := seedAssigned(fakes, fx, entity.ReservationStatusConfirmed, entity.RoomStatusAvailable)

		if err := svc.CheckIn(context.Background(), reservation.ID.String()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.Status != entity.ReservationStatusCheckedIn {
			t.Fatalf("expected checked_in, got %s", reservation.Status)
		}
		if room.Status != entity.RoomStatusOccupied {
			t.Fatalf("expected room occupied, got %s", room.Status)
		}
	})

	t.Run("check-in fails without an assigned room", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusConfirmed)

		err := svc.CheckIn(context.Background(), reservation.ID.String())
		if err == nil || !strings.Contains(err.Error(), "no room assigned") {
			t.Fatalf("expected no room error, got %v", err)
		}
	})

	t.Run("check-in fails when the room is already taken", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation, room := seedAssigned(fakes, fx, entity.ReservationStatusConfirmed, entity.RoomStatusOccupied)

		err := svc.CheckIn(context.Background(), reservation.ID.String())
		if err == nil || !strings.Contains(err.Error(), "not available") {
			t.Fatalf("expected room claim error, got %v", err)
		}
		if reservation.Status != entity.ReservationStatusConfirmed {
			t.Fatalf("reservation status changed unexpectedly to %s", reservation.Status)
		}
		if room.Status != entity.RoomStatusOccupied {
			t.Fatalf("room status changed unexpectedly to %s", room.Status)
		}
	})

	t.Run("check-in releases the claimed room when the transition loses", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		// Pending is not a valid source status for check-in.
		reservation, room := seedAssigned(fakes, fx, entity.ReservationStatusPending, entity.RoomStatusAvailable)

		err := svc.CheckIn(context.Background(), reservation.ID.String())
		if err == nil || !strings.Contains(err.Error(), "cannot be checked in") {
			t.Fatalf("expected transition error, got %v", err)
		}
		if room.Status != entity.RoomStatusAvailable {
			t.Fatalf("expected room released back to available, got %s", room.Status)
		}
	})

	t.Run("check-out frees the room and marks it dirty", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation, room := seedAssigned(fakes, fx, entity.ReservationStatusCheckedIn, entity.RoomStatusOccupied)

		if err := svc.CheckOut(context.Background(), reservation.ID.String()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if reservation.Status != entity.ReservationStatusCheckedOut {
			t.Fatalf("expected checked_out, got %s", reservation.Status)
		}
		if room.Status != entity.RoomStatusAvailable {
			t.Fatalf("expected room available, got %s", room.Status)
		}
		if room.Housekeeping != entity.HousekeepingDirty {
			t.Fatalf("expected room marked dirty, got %s", room.Housekeeping)
		}
	})
}

func TestReservationService_AddService(t *testing.T) {
	seedOffering := func(fakes *testRepos, propertyID uuid.UUID, price float64) *entity.PropertyService {
		now := time.Now()
		service := &entity.Service{
			Base:     entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			Name:     "Breakfast",
			IsActive: true,
		}
		fakes.services.services[service.ID] = service

		offering := &entity.PropertyService{
			Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
			PropertyID: propertyID,
			ServiceID:  service.ID,
			Price:      price,
			Currency:   "USD",
			IsActive:   true,
		}
		fakes.propertyServices.offerings[offering.ID] = offering
		return offering
	}

	t.Run("adds a line and rolls it into the totals", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusCheckedIn)
		offering := seedOffering(fakes, fx.property.ID, 25)

		line, err := svc.AddService(context.Background(), reservation.ID.String(), &request.AddReservationServiceRequest{
			PropertyServiceID: offering.ID.String(),
			Quantity:          2,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if line.UnitPrice != 25 || line.TotalPrice != 50 {
			t.Fatalf("unexpected line pricing: unit %.2f total %.2f", line.UnitPrice, line.TotalPrice)
		}
		if reservation.ServiceAmount != 50 {
			t.Fatalf("expected service amount 50, got %.2f", reservation.ServiceAmount)
		}
		if reservation.TotalAmount != 250 {
			t.Fatalf("expected total 250, got %.2f", reservation.TotalAmount)
		}
	})

	t.Run("rejects an offering from another property", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusConfirmed)
		offering := seedOffering(fakes, uuid.New(), 25)

		_, err := svc.AddService(context.Background(), reservation.ID.String(), &request.AddReservationServiceRequest{
			PropertyServiceID: offering.ID.String(),
			Quantity:          1,
		})
		if err == nil || !strings.Contains(err.Error(), "does not belong") {
			t.Fatalf("expected property mismatch error, got %v", err)
		}
	})

	t.Run("rejects services on a cancelled reservation", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewReservationService(repo, zap.NewNop())
		fx := seedStay(fakes)
		reservation := seedReservation(fakes, fx, entity.ReservationStatusCancelled)
		offering := seedOffering(fakes, fx.property.ID, 25)

		_, err := svc.AddService(context.Background(), reservation.ID.String(), &request.AddReservationServiceRequest{
			PropertyServiceID: offering.ID.String(),
			Quantity:          1,
		})
		if err == nil || !strings.Contains(err.Error(), "cannot take services") {
			t.Fatalf("expected status error, got %v", err)
		}
	})
}
