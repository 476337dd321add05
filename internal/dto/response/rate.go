package response

import (
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/utils"
)

type RatePlanResponse struct {
	ID          string    `json:"id"`
	PropertyID  string    `json:"property_id"`
	RoomTypeID  string    `json:"room_type_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func RatePlanToResponse(plan *entity.RatePlan) RatePlanResponse {
	return RatePlanResponse{
		ID:          plan.ID.String(),
		PropertyID:  plan.PropertyID.String(),
		RoomTypeID:  plan.RoomTypeID.String(),
		Name:        plan.Name,
		Description: plan.Description,
		BasePrice:   plan.BasePrice,
		Currency:    plan.Currency,
		IsActive:    plan.IsActive,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
}

type DailyRateResponse struct {
	ID             string  `json:"id"`
	RatePlanID     string  `json:"rate_plan_id"`
	RateDate       string  `json:"rate_date"`
	Price          float64 `json:"price"`
	AvailableRooms *int    `json:"available_rooms"`
	StopSell       bool    `json:"stop_sell"`
}

func DailyRateToResponse(rate *entity.DailyRate) DailyRateResponse {
	return DailyRateResponse{
		ID:             rate.ID.String(),
		RatePlanID:     rate.RatePlanID.String(),
		RateDate:       rate.RateDate.Format(utils.DateLayout),
		Price:          rate.Price,
		AvailableRooms: rate.AvailableRooms,
		StopSell:       rate.StopSell,
	}
}

// QuoteNight is one night of a stay quote. Price comes from the daily
// rate override when one exists, otherwise the plan's base price.
type QuoteNight struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

type QuoteResponse struct {
	RatePlanID string       `json:"rate_plan_id"`
	CheckIn    string       `json:"check_in"`
	CheckOut   string       `json:"check_out"`
	Nights     []QuoteNight `json:"nights"`
	Total      float64      `json:"total"`
	Currency   string       `json:"currency"`
}
