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

func seedRestaurant(fakes *testRepos) *entity.Restaurant {
	now := time.Now()
	restaurant := &entity.Restaurant{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		PropertyID: uuid.New(),
		Name:       "The Terrace",
		OpenTime:   "10:00",
		CloseTime:  "22:00",
		IsActive:   true,
	}
	fakes.restaurants.restaurants[restaurant.ID] = restaurant
	return restaurant
}

func seedDinerGuest(fakes *testRepos) *entity.Guest {
	now := time.Now()
	guest := &entity.Guest{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		FirstName: "Omar",
		LastName:  "Haddad",
	}
	fakes.guests.guests[guest.ID] = guest
	return guest
}

func seedTable(fakes *testRepos, restaurantID uuid.UUID, capacity int, status entity.TableStatus) *entity.RestaurantTable {
	now := time.Now()
	table := &entity.RestaurantTable{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RestaurantID: restaurantID,
		TableNumber:  "T1",
		Capacity:     capacity,
		Status:       status,
	}
	fakes.tables.tables[table.ID] = table
	return table
}

func seedTableBooking(fakes *testRepos, restaurantID, guestID uuid.UUID, partySize int, status entity.TableBookingStatus) *entity.TableBooking {
	now := time.Now()
	booking := &entity.TableBooking{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RestaurantID:    restaurantID,
		GuestID:         guestID,
		BookingTime:     tomorrowAt(19, 0),
		DurationMinutes: 90,
		PartySize:       partySize,
		Status:          status,
	}
	fakes.tableBookings.bookings[booking.ID] = booking
	return booking
}

// tomorrowAt avoids flaking on the booking-in-the-past check.
func tomorrowAt(hour, minute int) time.Time {
	day := time.Now().AddDate(0, 0, 1)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func TestRestaurantService_CreateBooking(t *testing.T) {
	t.Run("creates a pending booking with the default duration", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)

		resp, err := svc.CreateBooking(context.Background(), &request.CreateTableBookingRequest{
			RestaurantID: restaurant.ID.String(),
			GuestID:      guest.ID.String(),
			BookingTime:  tomorrowAt(12, 0).Format(time.RFC3339),
			PartySize:    4,
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if resp.Status != entity.TableBookingStatusPending {
			t.Fatalf("expected pending, got %s", resp.Status)
		}
		if resp.DurationMinutes != defaultBookingDurationMinutes {
			t.Fatalf("expected default duration %d, got %d", defaultBookingDurationMinutes, resp.DurationMinutes)
		}
	})

	t.Run("rejects a booking ending after closing", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)

		_, err := svc.CreateBooking(context.Background(), &request.CreateTableBookingRequest{
			RestaurantID: restaurant.ID.String(),
			GuestID:      guest.ID.String(),
			BookingTime:  tomorrowAt(21, 30).Format(time.RFC3339),
			PartySize:    2,
		})
		if err == nil || !strings.Contains(err.Error(), "outside opening hours") {
			t.Fatalf("expected opening hours error, got %v", err)
		}
	})

	t.Run("rejects a booking before opening", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)

		_, err := svc.CreateBooking(context.Background(), &request.CreateTableBookingRequest{
			RestaurantID: restaurant.ID.String(),
			GuestID:      guest.ID.String(),
			BookingTime:  tomorrowAt(8, 0).Format(time.RFC3339),
			PartySize:    2,
		})
		if err == nil || !strings.Contains(err.Error(), "outside opening hours") {
			t.Fatalf("expected opening hours error, got %v", err)
		}
	})

	t.Run("rejects a booking in the past", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)

		_, err := svc.CreateBooking(context.Background(), &request.CreateTableBookingRequest{
			RestaurantID: restaurant.ID.String(),
			GuestID:      guest.ID.String(),
			BookingTime:  time.Now().Add(-24 * time.Hour).Format(time.RFC3339),
			PartySize:    2,
		})
		if err == nil || !strings.Contains(err.Error(), "in the past") {
			t.Fatalf("expected past booking error, got %v", err)
		}
	})

	t.Run("rejects an inactive restaurant", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		restaurant.IsActive = false
		guest := seedDinerGuest(fakes)

		_, err := svc.CreateBooking(context.Background(), &request.CreateTableBookingRequest{
			RestaurantID: restaurant.ID.String(),
			GuestID:      guest.ID.String(),
			BookingTime:  tomorrowAt(12, 0).Format(time.RFC3339),
			PartySize:    2,
		})
		if err == nil || !strings.Contains(err.Error(), "not active") {
			t.Fatalf("expected inactive error, got %v", err)
		}
	})
}

func TestRestaurantService_SeatBooking(t *testing.T) {
	t.Run("seats a confirmed booking and claims the table", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)
		table := seedTable(fakes, restaurant.ID, 4, entity.TableStatusAvailable)
		booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 4, entity.TableBookingStatusConfirmed)

		err := svc.SeatBooking(context.Background(), booking.ID.String(), &request.SeatBookingRequest{TableID: table.ID.String()})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if booking.Status != entity.TableBookingStatusSeated {
			t.Fatalf("expected seated, got %s", booking.Status)
		}
		if booking.AssignedTableID == nil || *booking.AssignedTableID != table.ID {
			t.Fatalf("expected table assignment recorded")
		}
		if table.Status != entity.TableStatusOccupied {
			t.Fatalf("expected table occupied, got %s", table.Status)
		}
	})

	t.Run("rejects a table smaller than the party", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)
		table := seedTable(fakes, restaurant.ID, 2, entity.TableStatusAvailable)
		booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 6, entity.TableBookingStatusConfirmed)

		err := svc.SeatBooking(context.Background(), booking.ID.String(), &request.SeatBookingRequest{TableID: table.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "seats 2, party is 6") {
			t.Fatalf("expected capacity error, got %v", err)
		}
	})

	t.Run("rejects an overlapping booking on the table", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)
		table := seedTable(fakes, restaurant.ID, 4, entity.TableStatusAvailable)
		booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 4, entity.TableBookingStatusConfirmed)
		fakes.tableBookings.overlap = true

		err := svc.SeatBooking(context.Background(), booking.ID.String(), &request.SeatBookingRequest{TableID: table.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "already booked") {
			t.Fatalf("expected overlap error, got %v", err)
		}
		if table.Status != entity.TableStatusAvailable {
			t.Fatalf("table status changed unexpectedly to %s", table.Status)
		}
	})

	t.Run("rejects a table from another restaurant", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)
		table := seedTable(fakes, uuid.New(), 4, entity.TableStatusAvailable)
		booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 4, entity.TableBookingStatusConfirmed)

		err := svc.SeatBooking(context.Background(), booking.ID.String(), &request.SeatBookingRequest{TableID: table.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "does not belong") {
			t.Fatalf("expected restaurant mismatch error, got %v", err)
		}
	})

	t.Run("releases the table when the seat transition loses", func(t *testing.T) {
		repo, fakes := newTestRepos()
		svc := NewRestaurantService(repo, zap.NewNop())
		restaurant := seedRestaurant(fakes)
		guest := seedDinerGuest(fakes)
		table := seedTable(fakes, restaurant.ID, 4, entity.TableStatusAvailable)
		// Pending bookings cannot be seated, so the guarded seat fails after
		// the table has already been claimed.
		booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 4, entity.TableBookingStatusPending)

		err := svc.SeatBooking(context.Background(), booking.ID.String(), &request.SeatBookingRequest{TableID: table.ID.String()})
		if err == nil || !strings.Contains(err.Error(), "cannot be seated") {
			t.Fatalf("expected seat transition error, got %v", err)
		}
		if table.Status != entity.TableStatusAvailable {
			t.Fatalf("expected table released back to available, got %s", table.Status)
		}
	})
}

func TestRestaurantService_CompleteBooking(t *testing.T) {
	repo, fakes := newTestRepos()
	svc := NewRestaurantService(repo, zap.NewNop())
	restaurant := seedRestaurant(fakes)
	guest := seedDinerGuest(fakes)
	table := seedTable(fakes, restaurant.ID, 4, entity.TableStatusOccupied)
	booking := seedTableBooking(fakes, restaurant.ID, guest.ID, 4, entity.TableBookingStatusSeated)
	booking.AssignedTableID = &table.ID

	if err := svc.CompleteBooking(context.Background(), booking.ID.String()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if booking.Status != entity.TableBookingStatusCompleted {
		t.Fatalf("expected completed, got %s", booking.Status)
	}
	if table.Status != entity.TableStatusAvailable {
		t.Fatalf("expected table freed, got %s", table.Status)
	}

	t.Run("completing twice fails", func(t *testing.T) {
		err := svc.CompleteBooking(context.Background(), booking.ID.String())
		if err == nil || !strings.Contains(err.Error(), "cannot be completed") {
			t.Fatalf("expected transition error, got %v", err)
		}
	})
}

func TestRestaurantService_UpdateTable(t *testing.T) {
	repo, fakes := newTestRepos()
	svc := NewRestaurantService(repo, zap.NewNop())
	restaurant := seedRestaurant(fakes)
	table := seedTable(fakes, restaurant.ID, 4, entity.TableStatusOccupied)

	_, err := svc.UpdateTable(context.Background(), table.ID.String(), &request.UpdateTableRequest{
		TableNumber: "T1",
		Capacity:    4,
		Status:      "out_of_service",
	})
	if err == nil || !strings.Contains(err.Error(), "is occupied") {
		t.Fatalf("expected occupied guard error, got %v", err)
	}
}
