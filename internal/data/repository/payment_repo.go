package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	// CreateCapped inserts the payment only while the reservation's effective
	// paid total (captured amounts plus unrefunded remainders) leaves room for
	// it. Returns false when the insert would overpay the reservation.
	CreateCapped(ctx context.Context, payment *entity.Payment) (bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error)

	// Business queries
	MarkCaptured(ctx context.Context, paymentID uuid.UUID, paidAt time.Time) (bool, error)
	MarkRefunded(ctx context.Context, paymentID uuid.UUID, refundedAmount float64) (bool, error)
	MarkVoided(ctx context.Context, paymentID uuid.UUID) (bool, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) CreateCapped(ctx context.Context, payment *entity.Payment) (bool, error) {
	// The balance check rides inside the INSERT so two concurrent payments
	// cannot both pass a stale read and jointly overpay.
	query := `
		INSERT INTO payments (id, reservation_id, amount, refunded_amount, currency, method, status,
		                      transaction_id, paid_at, notes, created_at, updated_at)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		FROM reservations res
		WHERE res.id = $2
		  AND (
			SELECT COALESCE(SUM(CASE
				WHEN p.status = 'captured' THEN p.amount
				WHEN p.status = 'refunded' THEN p.amount - p.refunded_amount
				ELSE 0 END), 0)
			FROM payments p
			WHERE p.reservation_id = $2
		  ) + $3 <= res.total_amount
	`

	tag, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.Amount,
		payment.RefundedAmount,
		payment.Currency,
		payment.Method,
		payment.Status,
		payment.TransactionID,
		payment.PaidAt,
		payment.Notes,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("reservation_id", payment.ReservationID.String()),
			zap.Float64("amount", payment.Amount),
		)
		return false, fmt.Errorf("create payment for reservation %s: %w", payment.ReservationID.String(), err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, amount, refunded_amount, currency, method, status,
		       transaction_id, paid_at, notes, created_at, updated_at
		FROM payments
		WHERE id = $1
	`

	var payment entity.Payment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.Amount,
		&payment.RefundedAmount,
		&payment.Currency,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.PaidAt,
		&payment.Notes,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return &payment, nil
}

func (r *paymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT id, reservation_id, amount, refunded_amount, currency, method, status,
		       transaction_id, paid_at, notes, created_at, updated_at
		FROM payments
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find payments by reservation ID",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find payments for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var payment entity.Payment
		err := rows.Scan(
			&payment.ID,
			&payment.ReservationID,
			&payment.Amount,
			&payment.RefundedAmount,
			&payment.Currency,
			&payment.Method,
			&payment.Status,
			&payment.TransactionID,
			&payment.PaidAt,
			&payment.Notes,
			&payment.CreatedAt,
			&payment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	return payments, nil
}

// MarkCaptured flips an authorized payment to captured. A payment that was
// already voided or captured loses the race.
func (r *paymentRepository) MarkCaptured(ctx context.Context, paymentID uuid.UUID, paidAt time.Time) (bool, error) {
	query := `
		UPDATE payments
		SET status = 'captured', paid_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'authorized'
	`

	result, err := r.db.Exec(ctx, query, paymentID, paidAt)
	if err != nil {
		r.log.Error("Failed to mark payment captured",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return false, fmt.Errorf("mark payment %s captured: %w", paymentID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// MarkRefunded flips a captured payment to refunded. The status guard makes
// a double refund lose the race instead of refunding twice.
func (r *paymentRepository) MarkRefunded(ctx context.Context, paymentID uuid.UUID, refundedAmount float64) (bool, error) {
	query := `
		UPDATE payments
		SET status = 'refunded', refunded_amount = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'captured'
	`

	result, err := r.db.Exec(ctx, query, paymentID, refundedAmount)
	if err != nil {
		r.log.Error("Failed to mark payment refunded",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
			zap.Float64("refunded_amount", refundedAmount),
		)
		return false, fmt.Errorf("mark payment %s refunded: %w", paymentID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// MarkVoided flips an authorized payment to voided.
func (r *paymentRepository) MarkVoided(ctx context.Context, paymentID uuid.UUID) (bool, error) {
	query := `
		UPDATE payments
		SET status = 'voided', updated_at = NOW()
		WHERE id = $1 AND status = 'authorized'
	`

	result, err := r.db.Exec(ctx, query, paymentID)
	if err != nil {
		r.log.Error("Failed to mark payment voided",
			zap.Error(err),
			zap.String("payment_id", paymentID.String()),
		)
		return false, fmt.Errorf("mark payment %s voided: %w", paymentID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
