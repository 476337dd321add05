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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Room, error)
	CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindAvailableForStay(ctx context.Context, propertyID, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error)
	UpdateStatusIf(ctx context.Context, roomID uuid.UUID, from, to entity.RoomStatus) (bool, error)
	UpdateHousekeeping(ctx context.Context, roomID uuid.UUID, status entity.HousekeepingStatus) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, property_id, room_type_id, room_number, floor, status, housekeeping, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.PropertyID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Status,
		room.Housekeeping,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, property_id, room_type_id, room_number, floor, status, housekeeping, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.PropertyID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.Status,
		&room.Housekeeping,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Room, error) {
	query := `
		SELECT id, property_id, room_type_id, room_number, floor, status, housekeeping, created_at, updated_at
		FROM rooms
		WHERE property_id = $1
		ORDER BY room_number
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, propertyID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find rooms by property ID",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find rooms by property ID %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

func (r *roomRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms WHERE property_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, propertyID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}

	return count, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type_id = $2, room_number = $3, floor = $4, status = $5,
		    housekeeping = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Status,
		room.Housekeeping,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

// FindAvailableForStay lists operational rooms of the given type that are not
// held by an overlapping confirmed or in-house reservation.
func (r *roomRepository) FindAvailableForStay(ctx context.Context, propertyID, roomTypeID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	query := `
		SELECT id, property_id, room_type_id, room_number, floor, status, housekeeping, created_at, updated_at
		FROM rooms
		WHERE property_id = $1
		  AND room_type_id = $2
		  AND status <> 'out_of_service'
		  AND id NOT IN (
			SELECT assigned_room_id FROM reservations
			WHERE assigned_room_id IS NOT NULL
			  AND status IN ('confirmed', 'checked_in')
			  AND check_in_date < $4
			  AND check_out_date > $3
		  )
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query, propertyID, roomTypeID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.String("room_type_id", roomTypeID.String()),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available rooms for type %s: %w", roomTypeID.String(), err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// UpdateStatusIf flips the room status only when it currently has the expected
// status. Returns false when the guard did not match, so two concurrent
// check-ins against the same room cannot both succeed.
func (r *roomRepository) UpdateStatusIf(ctx context.Context, roomID uuid.UUID, from, to entity.RoomStatus) (bool, error) {
	query := `UPDATE rooms SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, roomID, from, to)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update room %s status to %s: %w", roomID.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *roomRepository) UpdateHousekeeping(ctx context.Context, roomID uuid.UUID, status entity.HousekeepingStatus) error {
	query := `UPDATE rooms SET housekeeping = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, roomID, status)
	if err != nil {
		r.log.Error("Failed to update room housekeeping",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("housekeeping", string(status)),
		)
		return fmt.Errorf("update room %s housekeeping to %s: %w", roomID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", roomID.String())
	}

	return nil
}

func (r *roomRepository) scanRooms(rows pgx.Rows) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.PropertyID,
			&room.RoomTypeID,
			&room.RoomNumber,
			&room.Floor,
			&room.Status,
			&room.Housekeeping,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}
