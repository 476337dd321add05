package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type PropertyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address,omitempty"`
	City      *string   `json:"city,omitempty"`
	Country   *string   `json:"country,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Currency  string    `json:"currency"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func PropertyToResponse(property *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:        property.ID.String(),
		Name:      property.Name,
		Address:   property.Address,
		City:      property.City,
		Country:   property.Country,
		Phone:     property.Phone,
		Email:     property.Email,
		Currency:  property.Currency,
		IsActive:  property.IsActive,
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}
