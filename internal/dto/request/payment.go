package request

type CreatePaymentRequest struct {
	ReservationID string  `json:"reservation_id" validate:"required,uuid4"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required,oneof=cash card transfer ota"`
	Authorized    bool    `json:"authorized"` // true records an authorization instead of a capture
	TransactionID *string `json:"transaction_id,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type RefundPaymentRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	Notes  *string `json:"notes,omitempty"`
}
