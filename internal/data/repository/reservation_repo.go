package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReservationFilter narrows reservation listings.
type ReservationFilter struct {
	PropertyID *uuid.UUID
	GuestID    *uuid.UUID
	Status     *entity.ReservationStatus
}

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByConfirmationCode(ctx context.Context, code string) (*entity.Reservation, error)
	FindAll(ctx context.Context, filter ReservationFilter, limit, offset int) ([]*entity.Reservation, error)
	Count(ctx context.Context, filter ReservationFilter) (int64, error)
	Update(ctx context.Context, reservation *entity.Reservation) error

	// Business queries
	AssignRoom(ctx context.Context, reservationID, roomID uuid.UUID, allowed []entity.ReservationStatus) (bool, error)
	TransitionStatus(ctx context.Context, reservationID uuid.UUID, from []entity.ReservationStatus, to entity.ReservationStatus) (bool, error)
	UpdatePaymentTotals(ctx context.Context, reservationID uuid.UUID, amountPaid float64, paymentStatus entity.PaymentState) error
	UpdateServiceTotals(ctx context.Context, reservationID uuid.UUID, serviceAmount, totalAmount float64) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, property_id, guest_id, room_type_id, rate_plan_id, assigned_room_id,
	confirmation_code, channel, status, payment_status, check_in_date, check_out_date,
	adults, children, contact_name, contact_email, contact_phone,
	total_amount, tax_amount, discount_amount, service_amount, amount_paid,
	currency, guest_notes, created_at, updated_at`

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.PropertyID,
		reservation.GuestID,
		reservation.RoomTypeID,
		reservation.RatePlanID,
		reservation.AssignedRoomID,
		reservation.ConfirmationCode,
		reservation.Channel,
		reservation.Status,
		reservation.PaymentStatus,
		reservation.CheckInDate,
		reservation.CheckOutDate,
		reservation.Adults,
		reservation.Children,
		reservation.ContactName,
		reservation.ContactEmail,
		reservation.ContactPhone,
		reservation.TotalAmount,
		reservation.TaxAmount,
		reservation.DiscountAmount,
		reservation.ServiceAmount,
		reservation.AmountPaid,
		reservation.Currency,
		reservation.GuestNotes,
		reservation.CreatedAt,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("confirmation_code", reservation.ConfirmationCode),
			zap.String("guest_id", reservation.GuestID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.ConfirmationCode, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	reservation, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindByConfirmationCode(ctx context.Context, code string) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE confirmation_code = $1`

	reservation, err := r.scanOne(r.db.QueryRow(ctx, query, code))
	if err != nil {
		r.log.Error("Failed to find reservation by confirmation code",
			zap.Error(err),
			zap.String("confirmation_code", code),
		)
		return nil, fmt.Errorf("find reservation by code %s: %w", code, err)
	}

	return reservation, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, filter ReservationFilter, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE ($1::uuid IS NULL OR property_id = $1)
		  AND ($2::uuid IS NULL OR guest_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(ctx, query, filter.PropertyID, filter.GuestID, filter.Status, limit, offset)
	if err != nil {
		r.log.Error("Failed to find reservations", zap.Error(err))
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*entity.Reservation
	for rows.Next() {
		reservation, err := r.scanOne(rows)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *reservationRepository) Count(ctx context.Context, filter ReservationFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM reservations
		WHERE ($1::uuid IS NULL OR property_id = $1)
		  AND ($2::uuid IS NULL OR guest_id = $2)
		  AND ($3::text IS NULL OR status = $3)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.PropertyID, filter.GuestID, filter.Status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}

	return count, nil
}

func (r *reservationRepository) Update(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET check_in_date = $2, check_out_date = $3, adults = $4, children = $5,
		    contact_name = $6, contact_email = $7, contact_phone = $8, channel = $9,
		    total_amount = $10, tax_amount = $11, discount_amount = $12,
		    guest_notes = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.CheckInDate,
		reservation.CheckOutDate,
		reservation.Adults,
		reservation.Children,
		reservation.ContactName,
		reservation.ContactEmail,
		reservation.ContactPhone,
		reservation.Channel,
		reservation.TotalAmount,
		reservation.TaxAmount,
		reservation.DiscountAmount,
		reservation.GuestNotes,
		reservation.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", reservation.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", reservation.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservation.ID.String())
	}

	return nil
}

// AssignRoom records the manual room assignment. The allowed list guards the
// update so a reservation already in-house or terminal cannot be reassigned.
func (r *reservationRepository) AssignRoom(ctx context.Context, reservationID, roomID uuid.UUID, allowed []entity.ReservationStatus) (bool, error) {
	query := `
		UPDATE reservations
		SET assigned_room_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`

	result, err := r.db.Exec(ctx, query, reservationID, roomID, statusStrings(allowed))
	if err != nil {
		r.log.Error("Failed to assign room",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("assign room %s to reservation %s: %w",
			roomID.String(), reservationID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// TransitionStatus performs a conditional status update. Returns false when
// the reservation was not in one of the expected source states, which is how
// concurrent conflicting transitions lose the race.
func (r *reservationRepository) TransitionStatus(ctx context.Context, reservationID uuid.UUID, from []entity.ReservationStatus, to entity.ReservationStatus) (bool, error) {
	query := `
		UPDATE reservations
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`

	result, err := r.db.Exec(ctx, query, reservationID, to, statusStrings(from))
	if err != nil {
		r.log.Error("Failed to transition reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition reservation %s to %s: %w",
			reservationID.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *reservationRepository) UpdatePaymentTotals(ctx context.Context, reservationID uuid.UUID, amountPaid float64, paymentStatus entity.PaymentState) error {
	query := `
		UPDATE reservations
		SET amount_paid = $2, payment_status = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, reservationID, amountPaid, paymentStatus)
	if err != nil {
		r.log.Error("Failed to update reservation payment totals",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return fmt.Errorf("update payment totals for reservation %s: %w", reservationID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func (r *reservationRepository) UpdateServiceTotals(ctx context.Context, reservationID uuid.UUID, serviceAmount, totalAmount float64) error {
	query := `
		UPDATE reservations
		SET service_amount = $2, total_amount = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, reservationID, serviceAmount, totalAmount)
	if err != nil {
		r.log.Error("Failed to update reservation service totals",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return fmt.Errorf("update service totals for reservation %s: %w", reservationID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}

	return nil
}

func (r *reservationRepository) scanOne(row pgx.Row) (*entity.Reservation, error) {
	var reservation entity.Reservation
	err := row.Scan(
		&reservation.ID,
		&reservation.PropertyID,
		&reservation.GuestID,
		&reservation.RoomTypeID,
		&reservation.RatePlanID,
		&reservation.AssignedRoomID,
		&reservation.ConfirmationCode,
		&reservation.Channel,
		&reservation.Status,
		&reservation.PaymentStatus,
		&reservation.CheckInDate,
		&reservation.CheckOutDate,
		&reservation.Adults,
		&reservation.Children,
		&reservation.ContactName,
		&reservation.ContactEmail,
		&reservation.ContactPhone,
		&reservation.TotalAmount,
		&reservation.TaxAmount,
		&reservation.DiscountAmount,
		&reservation.ServiceAmount,
		&reservation.AmountPaid,
		&reservation.Currency,
		&reservation.GuestNotes,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

func statusStrings(statuses []entity.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
