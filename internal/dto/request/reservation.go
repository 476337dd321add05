package request

type CreateReservationRequest struct {
	PropertyID   string  `json:"property_id" validate:"required,uuid4"`
	GuestID      string  `json:"guest_id" validate:"required,uuid4"`
	RoomTypeID   string  `json:"room_type_id" validate:"required,uuid4"`
	RatePlanID   string  `json:"rate_plan_id" validate:"required,uuid4"`
	CheckInDate  string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Adults       int     `json:"adults" validate:"required,min=1"`
	Children     int     `json:"children" validate:"min=0"`
	Channel      string  `json:"channel" validate:"required,oneof=ota website walkin phone"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	TaxAmount    float64 `json:"tax_amount" validate:"min=0"`
	Discount     float64 `json:"discount_amount" validate:"min=0"`
	GuestNotes   *string `json:"guest_notes,omitempty"`
}

type UpdateReservationRequest struct {
	CheckInDate  string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	Adults       int     `json:"adults" validate:"required,min=1"`
	Children     int     `json:"children" validate:"min=0"`
	Channel      string  `json:"channel" validate:"required,oneof=ota website walkin phone"`
	ContactName  *string `json:"contact_name,omitempty"`
	ContactEmail *string `json:"contact_email,omitempty" validate:"omitempty,email"`
	ContactPhone *string `json:"contact_phone,omitempty"`
	TaxAmount    float64 `json:"tax_amount" validate:"min=0"`
	Discount     float64 `json:"discount_amount" validate:"min=0"`
	GuestNotes   *string `json:"guest_notes,omitempty"`
}

type AssignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid4"`
}

type AddReservationServiceRequest struct {
	PropertyServiceID string `json:"property_service_id" validate:"required,uuid4"`
	Quantity          int    `json:"quantity" validate:"required,min=1"`
}

type ListReservationsRequest struct {
	PaginatedRequest
	PropertyID string `json:"property_id" validate:"omitempty,uuid4"`
	GuestID    string `json:"guest_id" validate:"omitempty,uuid4"`
	Status     string `json:"status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled no_show"`
}
