package entity

import "github.com/google/uuid"

type RoomType struct {
	Base
	PropertyID  uuid.UUID `db:"property_id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	MaxAdults   int       `db:"max_adults"`
	MaxChildren int       `db:"max_children"`
}
