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

type RatePlanRepository interface {
	Create(ctx context.Context, ratePlan *entity.RatePlan) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RatePlan, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.RatePlan, error)
	CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error)
	Update(ctx context.Context, ratePlan *entity.RatePlan) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ratePlanRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRatePlanRepository(db database.PgxIface, log *zap.Logger) RatePlanRepository {
	return &ratePlanRepository{
		db:  db,
		log: log.With(zap.String("repository", "rate_plan")),
	}
}

func (r *ratePlanRepository) Create(ctx context.Context, ratePlan *entity.RatePlan) error {
	query := `
		INSERT INTO rate_plans (id, property_id, room_type_id, name, description, base_price, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		ratePlan.ID,
		ratePlan.PropertyID,
		ratePlan.RoomTypeID,
		ratePlan.Name,
		ratePlan.Description,
		ratePlan.BasePrice,
		ratePlan.Currency,
		ratePlan.IsActive,
		ratePlan.CreatedAt,
		ratePlan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create rate plan",
			zap.Error(err),
			zap.String("name", ratePlan.Name),
		)
		return fmt.Errorf("create rate plan %s: %w", ratePlan.Name, err)
	}

	return nil
}

func (r *ratePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RatePlan, error) {
	query := `
		SELECT id, property_id, room_type_id, name, description, base_price, currency, is_active, created_at, updated_at
		FROM rate_plans
		WHERE id = $1
	`

	var ratePlan entity.RatePlan
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ratePlan.ID,
		&ratePlan.PropertyID,
		&ratePlan.RoomTypeID,
		&ratePlan.Name,
		&ratePlan.Description,
		&ratePlan.BasePrice,
		&ratePlan.Currency,
		&ratePlan.IsActive,
		&ratePlan.CreatedAt,
		&ratePlan.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rate plan by ID",
			zap.Error(err),
			zap.String("rate_plan_id", id.String()),
		)
		return nil, fmt.Errorf("find rate plan by ID %s: %w", id.String(), err)
	}

	return &ratePlan, nil
}

func (r *ratePlanRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID, limit, offset int) ([]*entity.RatePlan, error) {
	query := `
		SELECT id, property_id, room_type_id, name, description, base_price, currency, is_active, created_at, updated_at
		FROM rate_plans
		WHERE property_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, propertyID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find rate plans by property ID",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find rate plans by property ID %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var ratePlans []*entity.RatePlan
	for rows.Next() {
		var ratePlan entity.RatePlan
		err := rows.Scan(
			&ratePlan.ID,
			&ratePlan.PropertyID,
			&ratePlan.RoomTypeID,
			&ratePlan.Name,
			&ratePlan.Description,
			&ratePlan.BasePrice,
			&ratePlan.Currency,
			&ratePlan.IsActive,
			&ratePlan.CreatedAt,
			&ratePlan.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan rate plan row", zap.Error(err))
			return nil, fmt.Errorf("scan rate plan row: %w", err)
		}
		ratePlans = append(ratePlans, &ratePlan)
	}

	return ratePlans, nil
}

func (r *ratePlanRepository) CountByPropertyID(ctx context.Context, propertyID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM rate_plans WHERE property_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, propertyID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rate plans", zap.Error(err))
		return 0, fmt.Errorf("count rate plans: %w", err)
	}

	return count, nil
}

func (r *ratePlanRepository) Update(ctx context.Context, ratePlan *entity.RatePlan) error {
	query := `
		UPDATE rate_plans
		SET name = $2, description = $3, base_price = $4, currency = $5,
		    is_active = $6, updated_at = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		ratePlan.ID,
		ratePlan.Name,
		ratePlan.Description,
		ratePlan.BasePrice,
		ratePlan.Currency,
		ratePlan.IsActive,
		ratePlan.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update rate plan",
			zap.Error(err),
			zap.String("rate_plan_id", ratePlan.ID.String()),
		)
		return fmt.Errorf("update rate plan %s: %w", ratePlan.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate plan %s not found", ratePlan.ID.String())
	}

	return nil
}

func (r *ratePlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rate_plans WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete rate plan",
			zap.Error(err),
			zap.String("rate_plan_id", id.String()),
		)
		return fmt.Errorf("delete rate plan %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("rate plan %s not found", id.String())
	}

	r.log.Info("Rate plan deleted", zap.String("rate_plan_id", id.String()))
	return nil
}
