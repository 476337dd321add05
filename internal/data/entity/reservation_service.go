package entity

import "github.com/google/uuid"

// ReservationService is a service line consumed during a stay.
// TotalPrice = UnitPrice * Quantity, computed when the line is added.
type ReservationService struct {
	BaseSimple
	ReservationID     uuid.UUID `db:"reservation_id"`
	PropertyServiceID uuid.UUID `db:"property_service_id"`
	Quantity          int       `db:"quantity"`
	UnitPrice         float64   `db:"unit_price"`
	TotalPrice        float64   `db:"total_price"`
}
