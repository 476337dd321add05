package request

type CreateRatePlanRequest struct {
	PropertyID  string  `json:"property_id" validate:"required,uuid4"`
	RoomTypeID  string  `json:"room_type_id" validate:"required,uuid4"`
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
}

type UpdateRatePlanRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price" validate:"required,gt=0"`
	Currency    string  `json:"currency" validate:"required,len=3"`
	IsActive    bool    `json:"is_active"`
}

type CreateDailyRateRequest struct {
	RatePlanID     string  `json:"rate_plan_id" validate:"required,uuid4"`
	Date           string  `json:"date" validate:"required,datetime=2006-01-02"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	AvailableRooms *int    `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
	StopSell       bool    `json:"stop_sell"`
}

type UpdateDailyRateRequest struct {
	Price          float64 `json:"price" validate:"required,gt=0"`
	AvailableRooms *int    `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
	StopSell       bool    `json:"stop_sell"`
}

// BulkDailyRatesRequest covers a [start, end] date range in one call.
type BulkDailyRatesRequest struct {
	RatePlanID     string  `json:"rate_plan_id" validate:"required,uuid4"`
	StartDate      string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Price          float64 `json:"price" validate:"required,gt=0"`
	AvailableRooms *int    `json:"available_rooms,omitempty" validate:"omitempty,min=0"`
	StopSell       bool    `json:"stop_sell"`
}

type QuoteRequest struct {
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}
