package request

type CreatePropertyRequest struct {
	Name     string  `json:"name" validate:"required,max=150"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

type UpdatePropertyRequest struct {
	Name     string  `json:"name" validate:"required,max=150"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	Country  *string `json:"country,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Currency string  `json:"currency" validate:"required,len=3"`
	IsActive bool    `json:"is_active"`
}
