package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type RoomTypeResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	MaxAdults   int       `json:"max_adults"`
	MaxChildren int       `json:"max_children"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func RoomTypeToResponse(roomType *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          roomType.ID.String(),
		PropertyID:  roomType.PropertyID.String(),
		Name:        roomType.Name,
		Description: roomType.Description,
		MaxAdults:   roomType.MaxAdults,
		MaxChildren: roomType.MaxChildren,
		CreatedAt:   roomType.CreatedAt,
		UpdatedAt:   roomType.UpdatedAt,
	}
}

type RoomResponse struct {
	ID           string                    `json:"id"`
	PropertyID   string                    `json:"property_id"`
	RoomTypeID   string                    `json:"room_type_id"`
	RoomNumber   string                    `json:"room_number"`
	Floor        *int                      `json:"floor,omitempty"`
	Status       entity.RoomStatus         `json:"status"`
	Housekeeping entity.HousekeepingStatus `json:"housekeeping"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:           room.ID.String(),
		PropertyID:   room.PropertyID.String(),
		RoomTypeID:   room.RoomTypeID.String(),
		RoomNumber:   room.RoomNumber,
		Floor:        room.Floor,
		Status:       room.Status,
		Housekeeping: room.Housekeeping,
		CreatedAt:    room.CreatedAt,
		UpdatedAt:    room.UpdatedAt,
	}
}
