package request

type CreateRoomTypeRequest struct {
	PropertyID  string  `json:"property_id" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	MaxAdults   int     `json:"max_adults" validate:"required,min=1"`
	MaxChildren int     `json:"max_children" validate:"min=0"`
}

type CreateRoomRequest struct {
	PropertyID string `json:"property_id" validate:"required,uuid4"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Floor      *int   `json:"floor,omitempty"`
}

type UpdateRoomRequest struct {
	RoomTypeID string `json:"room_type_id" validate:"required,uuid4"`
	RoomNumber string `json:"room_number" validate:"required,max=20"`
	Floor      *int   `json:"floor,omitempty"`
	Status     string `json:"status" validate:"required,oneof=available occupied out_of_service"`
}

type UpdateHousekeepingRequest struct {
	Housekeeping string `json:"housekeeping" validate:"required,oneof=clean dirty inspected"`
}
