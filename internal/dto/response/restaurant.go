package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type RestaurantResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OpenTime    string    `json:"open_time"`
	CloseTime   string    `json:"close_time"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func RestaurantToResponse(restaurant *entity.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:          restaurant.ID.String(),
		PropertyID:  restaurant.PropertyID.String(),
		Name:        restaurant.Name,
		Description: restaurant.Description,
		OpenTime:    restaurant.OpenTime,
		CloseTime:   restaurant.CloseTime,
		IsActive:    restaurant.IsActive,
		CreatedAt:   restaurant.CreatedAt,
		UpdatedAt:   restaurant.UpdatedAt,
	}
}

type TableResponse struct {
	ID           string             `json:"id"`
	RestaurantID string             `json:"restaurant_id"`
	TableNumber  string             `json:"table_number"`
	Capacity     int                `json:"capacity"`
	Status       entity.TableStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

func TableToResponse(table *entity.RestaurantTable) TableResponse {
	return TableResponse{
		ID:           table.ID.String(),
		RestaurantID: table.RestaurantID.String(),
		TableNumber:  table.TableNumber,
		Capacity:     table.Capacity,
		Status:       table.Status,
		CreatedAt:    table.CreatedAt,
		UpdatedAt:    table.UpdatedAt,
	}
}

type TableBookingResponse struct {
	ID              string                    `json:"id"`
	RestaurantID    string                    `json:"restaurant_id"`
	GuestID         string                    `json:"guest_id"`
	AssignedTableID *string                   `json:"assigned_table_id,omitempty"`
	BookingTime     time.Time                 `json:"booking_time"`
	EndTime         time.Time                 `json:"end_time"`
	DurationMinutes int                       `json:"duration_minutes"`
	PartySize       int                       `json:"party_size"`
	Status          entity.TableBookingStatus `json:"status"`
	Notes           *string                   `json:"notes,omitempty"`
	CreatedAt       time.Time                 `json:"created_at"`
}

func TableBookingToResponse(booking *entity.TableBooking) TableBookingResponse {
	resp := TableBookingResponse{
		ID:              booking.ID.String(),
		RestaurantID:    booking.RestaurantID.String(),
		GuestID:         booking.GuestID.String(),
		BookingTime:     booking.BookingTime,
		EndTime:         booking.EndTime(),
		DurationMinutes: booking.DurationMinutes,
		PartySize:       booking.PartySize,
		Status:          booking.Status,
		Notes:           booking.Notes,
		CreatedAt:       booking.CreatedAt,
	}
	if booking.AssignedTableID != nil {
		tableID := booking.AssignedTableID.String()
		resp.AssignedTableID = &tableID
	}
	return resp
}
