package entity

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusAvailable    RoomStatus = "available"
	RoomStatusOccupied     RoomStatus = "occupied"
	RoomStatusOutOfService RoomStatus = "out_of_service"
)

type HousekeepingStatus string

const (
	HousekeepingClean     HousekeepingStatus = "clean"
	HousekeepingDirty     HousekeepingStatus = "dirty"
	HousekeepingInspected HousekeepingStatus = "inspected"
)

type Room struct {
	Base
	PropertyID   uuid.UUID          `db:"property_id"`
	RoomTypeID   uuid.UUID          `db:"room_type_id"`
	RoomNumber   string             `db:"room_number"` // 101, 102, 201, etc.
	Floor        *int               `db:"floor"`
	Status       RoomStatus         `db:"status"`
	Housekeeping HousekeepingStatus `db:"housekeeping"`
}
