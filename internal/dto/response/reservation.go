package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type ReservationResponse struct {
	ID               string                   `json:"id"`
	ConfirmationCode string                   `json:"confirmation_code"`
	PropertyID       string                   `json:"property_id"`
	GuestID          string                   `json:"guest_id"`
	GuestName        string                   `json:"guest_name,omitempty"`
	RoomTypeID       string                   `json:"room_type_id"`
	RoomTypeName     string                   `json:"room_type_name,omitempty"`
	RatePlanID       string                   `json:"rate_plan_id"`
	AssignedRoomID   *string                  `json:"assigned_room_id,omitempty"`
	RoomNumber       *string                  `json:"room_number,omitempty"`
	Channel          entity.ReservationChannel `json:"channel"`
	Status           entity.ReservationStatus `json:"status"`
	PaymentStatus    entity.PaymentState      `json:"payment_status"`
	CheckInDate      string                   `json:"check_in_date"`
	CheckOutDate     string                   `json:"check_out_date"`
	Nights           int                      `json:"nights"`
	Adults           int                      `json:"adults"`
	Children         int                      `json:"children"`
	ContactName      *string                  `json:"contact_name,omitempty"`
	ContactEmail     *string                  `json:"contact_email,omitempty"`
	ContactPhone     *string                  `json:"contact_phone,omitempty"`
	TotalAmount      float64                  `json:"total_amount"`
	TaxAmount        float64                  `json:"tax_amount"`
	DiscountAmount   float64                  `json:"discount_amount"`
	ServiceAmount    float64                  `json:"service_amount"`
	AmountPaid       float64                  `json:"amount_paid"`
	Balance          float64                  `json:"balance"`
	Currency         string                   `json:"currency"`
	GuestNotes       *string                  `json:"guest_notes,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation) ReservationResponse {
	resp := ReservationResponse{
		ID:               reservation.ID.String(),
		ConfirmationCode: reservation.ConfirmationCode,
		PropertyID:       reservation.PropertyID.String(),
		GuestID:          reservation.GuestID.String(),
		RoomTypeID:       reservation.RoomTypeID.String(),
		RatePlanID:       reservation.RatePlanID.String(),
		Channel:          reservation.Channel,
		Status:           reservation.Status,
		PaymentStatus:    reservation.PaymentStatus,
		CheckInDate:      reservation.CheckInDate.Format("2006-01-02"),
		CheckOutDate:     reservation.CheckOutDate.Format("2006-01-02"),
		Nights:           reservation.Nights(),
		Adults:           reservation.Adults,
		Children:         reservation.Children,
		ContactName:      reservation.ContactName,
		ContactEmail:     reservation.ContactEmail,
		ContactPhone:     reservation.ContactPhone,
		TotalAmount:      reservation.TotalAmount,
		TaxAmount:        reservation.TaxAmount,
		DiscountAmount:   reservation.DiscountAmount,
		ServiceAmount:    reservation.ServiceAmount,
		AmountPaid:       reservation.AmountPaid,
		Balance:          reservation.Balance(),
		Currency:         reservation.Currency,
		GuestNotes:       reservation.GuestNotes,
		CreatedAt:        reservation.CreatedAt,
	}

	if reservation.AssignedRoomID != nil {
		roomID := reservation.AssignedRoomID.String()
		resp.AssignedRoomID = &roomID
	}

	return resp
}

type ReservationServiceLineResponse struct {
	ID                string    `json:"id"`
	PropertyServiceID string    `json:"property_service_id"`
	ServiceName       string    `json:"service_name,omitempty"`
	Quantity          int       `json:"quantity"`
	UnitPrice         float64   `json:"unit_price"`
	TotalPrice        float64   `json:"total_price"`
	CreatedAt         time.Time `json:"created_at"`
}
