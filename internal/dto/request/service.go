package request

type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description,omitempty"`
	IsActive    bool    `json:"is_active"`
}

type AttachPropertyServiceRequest struct {
	ServiceID string  `json:"service_id" validate:"required,uuid4"`
	Price     float64 `json:"price" validate:"required,gt=0"`
	Currency  string  `json:"currency" validate:"required,len=3"`
}

type UpdatePropertyServiceRequest struct {
	Price    float64 `json:"price" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
	IsActive bool    `json:"is_active"`
}
