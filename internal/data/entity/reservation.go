package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "pending"
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusCheckedIn  ReservationStatus = "checked_in"
	ReservationStatusCheckedOut ReservationStatus = "checked_out"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
	ReservationStatusNoShow     ReservationStatus = "no_show"
)

type PaymentState string

const (
	PaymentStateUnpaid   PaymentState = "unpaid"
	PaymentStatePartial  PaymentState = "partial"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateRefunded PaymentState = "refunded"
)

type ReservationChannel string

const (
	ChannelOTA     ReservationChannel = "ota"
	ChannelWebsite ReservationChannel = "website"
	ChannelWalkIn  ReservationChannel = "walkin"
	ChannelPhone   ReservationChannel = "phone"
)

type Reservation struct {
	Base
	PropertyID       uuid.UUID          `db:"property_id"`
	GuestID          uuid.UUID          `db:"guest_id"`
	RoomTypeID       uuid.UUID          `db:"room_type_id"`
	RatePlanID       uuid.UUID          `db:"rate_plan_id"`
	AssignedRoomID   *uuid.UUID         `db:"assigned_room_id"`
	ConfirmationCode string             `db:"confirmation_code"`
	Channel          ReservationChannel `db:"channel"`
	Status           ReservationStatus  `db:"status"`
	PaymentStatus    PaymentState       `db:"payment_status"`
	CheckInDate      time.Time          `db:"check_in_date"`
	CheckOutDate     time.Time          `db:"check_out_date"`
	Adults           int                `db:"adults"`
	Children         int                `db:"children"`
	ContactName      *string            `db:"contact_name"`
	ContactEmail     *string            `db:"contact_email"`
	ContactPhone     *string            `db:"contact_phone"`
	TotalAmount      float64            `db:"total_amount"`
	TaxAmount        float64            `db:"tax_amount"`
	DiscountAmount   float64            `db:"discount_amount"`
	ServiceAmount    float64            `db:"service_amount"`
	AmountPaid       float64            `db:"amount_paid"`
	Currency         string             `db:"currency"`
	GuestNotes       *string            `db:"guest_notes"`
}

// Balance is the amount still owed on the reservation.
func (r *Reservation) Balance() float64 {
	return r.TotalAmount - r.AmountPaid
}

// Nights counts nights between check-in and check-out dates.
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
