package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusVoided     PaymentStatus = "voided"
)

type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodOTA      PaymentMethod = "ota"
)

type Payment struct {
	Base
	ReservationID  uuid.UUID     `db:"reservation_id"`
	Amount         float64       `db:"amount"`
	RefundedAmount float64       `db:"refunded_amount"`
	Currency       string        `db:"currency"`
	Method         PaymentMethod `db:"method"`
	Status         PaymentStatus `db:"status"`
	TransactionID  *string       `db:"transaction_id"`
	PaidAt         *time.Time    `db:"paid_at"`
	Notes          *string       `db:"notes"`
}
