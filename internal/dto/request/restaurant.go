package request

type CreateRestaurantRequest struct {
	PropertyID  string  `json:"property_id" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	OpenTime    string  `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime   string  `json:"close_time" validate:"required,datetime=15:04"`
}

type UpdateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	OpenTime    string  `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime   string  `json:"close_time" validate:"required,datetime=15:04"`
	IsActive    bool    `json:"is_active"`
}

type CreateTableRequest struct {
	TableNumber string `json:"table_number" validate:"required,max=20"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
}

type UpdateTableRequest struct {
	TableNumber string `json:"table_number" validate:"required,max=20"`
	Capacity    int    `json:"capacity" validate:"required,min=1"`
	Status      string `json:"status" validate:"required,oneof=available occupied out_of_service"`
}

type CreateTableBookingRequest struct {
	RestaurantID    string  `json:"restaurant_id" validate:"required,uuid4"`
	GuestID         string  `json:"guest_id" validate:"required,uuid4"`
	BookingTime     string  `json:"booking_time" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	DurationMinutes int     `json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	PartySize       int     `json:"party_size" validate:"required,min=1"`
	Notes           *string `json:"notes,omitempty"`
}

type SeatBookingRequest struct {
	TableID string `json:"table_id" validate:"required,uuid4"`
}
