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

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, property_id, name, description, max_adults, max_children, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.PropertyID,
		roomType.Name,
		roomType.Description,
		roomType.MaxAdults,
		roomType.MaxChildren,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `
		SELECT id, property_id, name, description, max_adults, max_children, created_at, updated_at
		FROM room_types
		WHERE id = $1
	`

	var roomType entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.PropertyID,
		&roomType.Name,
		&roomType.Description,
		&roomType.MaxAdults,
		&roomType.MaxChildren,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return &roomType, nil
}

func (r *roomTypeRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.RoomType, error) {
	query := `
		SELECT id, property_id, name, description, max_adults, max_children, created_at, updated_at
		FROM room_types
		WHERE property_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		r.log.Error("Failed to find room types by property ID",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find room types by property ID %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		var roomType entity.RoomType
		err := rows.Scan(
			&roomType.ID,
			&roomType.PropertyID,
			&roomType.Name,
			&roomType.Description,
			&roomType.MaxAdults,
			&roomType.MaxChildren,
			&roomType.CreatedAt,
			&roomType.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, &roomType)
	}

	return roomTypes, nil
}
