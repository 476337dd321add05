package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyRate overrides a rate plan's base price for a single date.
// AvailableRooms nil means unlimited. StopSell makes the date unbookable
// regardless of AvailableRooms.
type DailyRate struct {
	Base
	RatePlanID     uuid.UUID `db:"rate_plan_id"`
	RateDate       time.Time `db:"rate_date"`
	Price          float64   `db:"price"`
	AvailableRooms *int      `db:"available_rooms"`
	StopSell       bool      `db:"stop_sell"`
}
