package entity

import "github.com/google/uuid"

// PropertyService is a service offered at a property with its local price.
type PropertyService struct {
	Base
	PropertyID uuid.UUID `db:"property_id"`
	ServiceID  uuid.UUID `db:"service_id"`
	Price      float64   `db:"price"`
	Currency   string    `db:"currency"`
	IsActive   bool      `db:"is_active"`
}
