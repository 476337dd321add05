package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type GuestResponse struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Nationality *string   `json:"nationality,omitempty"`
	IDNumber    *string   `json:"id_number,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func GuestToResponse(guest *entity.Guest) GuestResponse {
	return GuestResponse{
		ID:          guest.ID.String(),
		FirstName:   guest.FirstName,
		LastName:    guest.LastName,
		Email:       guest.Email,
		Phone:       guest.Phone,
		Nationality: guest.Nationality,
		IDNumber:    guest.IDNumber,
		Notes:       guest.Notes,
		CreatedAt:   guest.CreatedAt,
	}
}
