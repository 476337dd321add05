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

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *entity.Restaurant) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error)
	CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Update(ctx context.Context, restaurant *entity.Restaurant) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type restaurantRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantRepository(db database.PgxIface, log *zap.Logger) RestaurantRepository {
	return &restaurantRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant")),
	}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, property_id, name, description, open_time, close_time, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.PropertyID,
		restaurant.Name,
		restaurant.Description,
		restaurant.OpenTime,
		restaurant.CloseTime,
		restaurant.IsActive,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create restaurant",
			zap.Error(err),
			zap.String("name", restaurant.Name),
		)
		return fmt.Errorf("create restaurant %s: %w", restaurant.Name, err)
	}

	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	query := `
		SELECT id, property_id, name, description, open_time, close_time, is_active, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurant entity.Restaurant
	err := r.db.QueryRow(ctx, query, id).Scan(
		&restaurant.ID,
		&restaurant.PropertyID,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.OpenTime,
		&restaurant.CloseTime,
		&restaurant.IsActive,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find restaurant by ID",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return nil, fmt.Errorf("find restaurant by ID %s: %w", id.String(), err)
	}

	return &restaurant, nil
}

func (r *restaurantRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.Restaurant, error) {
	query := `
		SELECT id, property_id, name, description, open_time, close_time, is_active, created_at, updated_at
		FROM restaurants
		WHERE property_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, propertyID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find restaurants by property ID",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find restaurants by property ID %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var restaurants []*entity.Restaurant
	for rows.Next() {
		var restaurant entity.Restaurant
		err := rows.Scan(
			&restaurant.ID,
			&restaurant.PropertyID,
			&restaurant.Name,
			&restaurant.Description,
			&restaurant.OpenTime,
			&restaurant.CloseTime,
			&restaurant.IsActive,
			&restaurant.CreatedAt,
			&restaurant.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan restaurant row", zap.Error(err))
			return nil, fmt.Errorf("scan restaurant row: %w", err)
		}
		restaurants = append(restaurants, &restaurant)
	}

	return restaurants, nil
}

func (r *restaurantRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM restaurants WHERE property_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, propertyID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count restaurants", zap.Error(err))
		return 0, fmt.Errorf("count restaurants: %w", err)
	}

	return count, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	query := `
		UPDATE restaurants
		SET name = $2, description = $3, open_time = $4, close_time = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Description,
		restaurant.OpenTime,
		restaurant.CloseTime,
		restaurant.IsActive,
		restaurant.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update restaurant",
			zap.Error(err),
			zap.String("restaurant_id", restaurant.ID.String()),
		)
		return fmt.Errorf("update restaurant %s: %w", restaurant.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", restaurant.ID.String())
	}

	return nil
}

func (r *restaurantRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurants WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete restaurant",
			zap.Error(err),
			zap.String("restaurant_id", id.String()),
		)
		return fmt.Errorf("delete restaurant %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("restaurant %s not found", id.String())
	}

	r.log.Info("Restaurant deleted", zap.String("restaurant_id", id.String()))
	return nil
}
