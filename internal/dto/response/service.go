package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          service.ID.String(),
		Name:        service.Name,
		Description: service.Description,
		IsActive:    service.IsActive,
		CreatedAt:   service.CreatedAt,
	}
}

type PropertyServiceResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	ServiceID  string    `json:"service_id"`
	Price      float64   `json:"price"`
	Currency   string    `json:"currency"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

func PropertyServiceToResponse(ps *entity.PropertyService) PropertyServiceResponse {
	return PropertyServiceResponse{
		ID:         ps.ID.String(),
		PropertyID: ps.PropertyID.String(),
		ServiceID:  ps.ServiceID.String(),
		Price:      ps.Price,
		Currency:   ps.Currency,
		IsActive:   ps.IsActive,
		CreatedAt:  ps.CreatedAt,
	}
}
