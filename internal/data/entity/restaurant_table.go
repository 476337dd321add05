package entity

import "github.com/google/uuid"

type TableStatus string

const (
	TableStatusAvailable    TableStatus = "available"
	TableStatusOccupied     TableStatus = "occupied"
	TableStatusOutOfService TableStatus = "out_of_service"
)

type RestaurantTable struct {
	Base
	RestaurantID uuid.UUID   `db:"restaurant_id"`
	TableNumber  string      `db:"table_number"` // T1, T2, etc.
	Capacity     int         `db:"capacity"`
	Status       TableStatus `db:"status"`
}
