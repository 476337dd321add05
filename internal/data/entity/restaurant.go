package entity

import "github.com/google/uuid"

type Restaurant struct {
	Base
	PropertyID  uuid.UUID `db:"property_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OpenTime    string    `db:"open_time"`  // HH:MM
	CloseTime   string    `db:"close_time"` // HH:MM
	IsActive    bool      `db:"is_active"`
}
