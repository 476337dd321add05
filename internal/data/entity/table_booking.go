package entity

import (
	"time"

	"github.com/google/uuid"
)

type TableBookingStatus string

const (
	TableBookingStatusPending   TableBookingStatus = "pending"
	TableBookingStatusConfirmed TableBookingStatus = "confirmed"
	TableBookingStatusSeated    TableBookingStatus = "seated"
	TableBookingStatusCompleted TableBookingStatus = "completed"
	TableBookingStatusCancelled TableBookingStatus = "cancelled"
	TableBookingStatusNoShow    TableBookingStatus = "no_show"
)

type TableBooking struct {
	Base
	RestaurantID    uuid.UUID          `db:"restaurant_id"`
	GuestID         uuid.UUID          `db:"guest_id"`
	AssignedTableID *uuid.UUID         `db:"assigned_table_id"`
	BookingTime     time.Time          `db:"booking_time"`
	DurationMinutes int                `db:"duration_minutes"`
	PartySize       int                `db:"party_size"`
	Status          TableBookingStatus `db:"status"`
	Notes           *string            `db:"notes"`
}

// EndTime is when the table is expected to be free again.
func (b *TableBooking) EndTime() time.Time {
	return b.BookingTime.Add(time.Duration(b.DurationMinutes) * time.Minute)
}
