package response

import (
	"time"

	"hotel-pms/internal/data/entity"
)

type PaymentResponse struct {
	ID             string               `json:"id"`
	ReservationID  string               `json:"reservation_id"`
	Amount         float64              `json:"amount"`
	RefundedAmount float64              `json:"refunded_amount,omitempty"`
	Currency       string               `json:"currency"`
	Method         entity.PaymentMethod `json:"method"`
	Status         entity.PaymentStatus `json:"status"`
	TransactionID  *string              `json:"transaction_id,omitempty"`
	PaidAt         *time.Time           `json:"paid_at,omitempty"`
	Notes          *string              `json:"notes,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:             payment.ID.String(),
		ReservationID:  payment.ReservationID.String(),
		Amount:         payment.Amount,
		RefundedAmount: payment.RefundedAmount,
		Currency:       payment.Currency,
		Method:         payment.Method,
		Status:         payment.Status,
		TransactionID:  payment.TransactionID,
		PaidAt:         payment.PaidAt,
		Notes:          payment.Notes,
		CreatedAt:      payment.CreatedAt,
	}
}
