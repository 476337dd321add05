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

// TableBookingFilter narrows table booking listings.
type TableBookingFilter struct {
	RestaurantID *uuid.UUID
	GuestID      *uuid.UUID
	Status       *entity.TableBookingStatus
	Date         *time.Time
}

type TableBookingRepository interface {
	Create(ctx context.Context, booking *entity.TableBooking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TableBooking, error)
	FindAll(ctx context.Context, filter TableBookingFilter, limit, offset int) ([]*entity.TableBooking, error)
	Count(ctx context.Context, filter TableBookingFilter) (int64, error)

	// Business queries
	TransitionStatus(ctx context.Context, bookingID uuid.UUID, from []entity.TableBookingStatus, to entity.TableBookingStatus) (bool, error)
	Seat(ctx context.Context, bookingID, tableID uuid.UUID) (bool, error)
	HasOverlap(ctx context.Context, tableID uuid.UUID, start, end time.Time) (bool, error)
}

type tableBookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTableBookingRepository(db database.PgxIface, log *zap.Logger) TableBookingRepository {
	return &tableBookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "table_booking")),
	}
}

const tableBookingColumns = `id, restaurant_id, guest_id, assigned_table_id, booking_time,
	duration_minutes, party_size, status, notes, created_at, updated_at`

func (r *tableBookingRepository) Create(ctx context.Context, booking *entity.TableBooking) error {
	query := `
		INSERT INTO table_bookings (` + tableBookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.RestaurantID,
		booking.GuestID,
		booking.AssignedTableID,
		booking.BookingTime,
		booking.DurationMinutes,
		booking.PartySize,
		booking.Status,
		booking.Notes,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create table booking",
			zap.Error(err),
			zap.String("restaurant_id", booking.RestaurantID.String()),
			zap.String("guest_id", booking.GuestID.String()),
		)
		return fmt.Errorf("create table booking for restaurant %s: %w", booking.RestaurantID.String(), err)
	}

	return nil
}

func (r *tableBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TableBooking, error) {
	query := `SELECT ` + tableBookingColumns + ` FROM table_bookings WHERE id = $1`

	booking, err := r.scanOne(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find table booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find table booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *tableBookingRepository) FindAll(ctx context.Context, filter TableBookingFilter, limit, offset int) ([]*entity.TableBooking, error) {
	query := `
		SELECT ` + tableBookingColumns + `
		FROM table_bookings
		WHERE ($1::uuid IS NULL OR restaurant_id = $1)
		  AND ($2::uuid IS NULL OR guest_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		  AND ($4::date IS NULL OR booking_time::date = $4)
		ORDER BY booking_time DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query, filter.RestaurantID, filter.GuestID, filter.Status, filter.Date, limit, offset)
	if err != nil {
		r.log.Error("Failed to find table bookings", zap.Error(err))
		return nil, fmt.Errorf("find table bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.TableBooking
	for rows.Next() {
		booking, err := r.scanOne(rows)
		if err != nil {
			r.log.Error("Failed to scan table booking row", zap.Error(err))
			return nil, fmt.Errorf("scan table booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *tableBookingRepository) Count(ctx context.Context, filter TableBookingFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM table_bookings
		WHERE ($1::uuid IS NULL OR restaurant_id = $1)
		  AND ($2::uuid IS NULL OR guest_id = $2)
		  AND ($3::text IS NULL OR status = $3)
		  AND ($4::date IS NULL OR booking_time::date = $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.RestaurantID, filter.GuestID, filter.Status, filter.Date).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count table bookings", zap.Error(err))
		return 0, fmt.Errorf("count table bookings: %w", err)
	}

	return count, nil
}

// TransitionStatus performs a conditional status update, same guard pattern as
// reservations.
func (r *tableBookingRepository) TransitionStatus(ctx context.Context, bookingID uuid.UUID, from []entity.TableBookingStatus, to entity.TableBookingStatus) (bool, error) {
	query := `
		UPDATE table_bookings
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = ANY($3)
	`

	fromStrings := make([]string, len(from))
	for i, s := range from {
		fromStrings[i] = string(s)
	}

	result, err := r.db.Exec(ctx, query, bookingID, to, fromStrings)
	if err != nil {
		r.log.Error("Failed to transition table booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("transition table booking %s to %s: %w",
			bookingID.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

// Seat marks a confirmed booking seated and records the table in one guarded update.
func (r *tableBookingRepository) Seat(ctx context.Context, bookingID, tableID uuid.UUID) (bool, error) {
	query := `
		UPDATE table_bookings
		SET status = 'seated', assigned_table_id = $2, updated_at = NOW()
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.Exec(ctx, query, bookingID, tableID)
	if err != nil {
		r.log.Error("Failed to seat table booking",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("table_id", tableID.String()),
		)
		return false, fmt.Errorf("seat table booking %s: %w", bookingID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// HasOverlap reports whether an active booking already holds the table for a
// window overlapping [start, end).
func (r *tableBookingRepository) HasOverlap(ctx context.Context, tableID uuid.UUID, start, end time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM table_bookings
			WHERE assigned_table_id = $1
			  AND status IN ('confirmed', 'seated')
			  AND booking_time < $3
			  AND booking_time + make_interval(mins => duration_minutes) > $2
		)
	`

	var exists bool
	err := r.db.QueryRow(ctx, query, tableID, start, end).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check table booking overlap",
			zap.Error(err),
			zap.String("table_id", tableID.String()),
		)
		return false, fmt.Errorf("check overlap for table %s: %w", tableID.String(), err)
	}

	return exists, nil
}

func (r *tableBookingRepository) scanOne(row pgx.Row) (*entity.TableBooking, error) {
	var booking entity.TableBooking
	err := row.Scan(
		&booking.ID,
		&booking.RestaurantID,
		&booking.GuestID,
		&booking.AssignedTableID,
		&booking.BookingTime,
		&booking.DurationMinutes,
		&booking.PartySize,
		&booking.Status,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}
