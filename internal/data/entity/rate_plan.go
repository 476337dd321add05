package entity

import "github.com/google/uuid"

type RatePlan struct {
	Base
	PropertyID  uuid.UUID `db:"property_id"`
	RoomTypeID  uuid.UUID `db:"room_type_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	BasePrice   float64   `db:"base_price"`
	Currency    string    `db:"currency"`
	IsActive    bool      `db:"is_active"`
}
