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

type PropertyServiceRepository interface {
	Create(ctx context.Context, offering *entity.PropertyService) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyService, error)
	FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyService, error)
}

type propertyServiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyServiceRepository(db database.PgxIface, log *zap.Logger) PropertyServiceRepository {
	return &propertyServiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "property_service")),
	}
}

func (r *propertyServiceRepository) Create(ctx context.Context, offering *entity.PropertyService) error {
	query := `
		INSERT INTO property_services (id, property_id, service_id, price, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		offering.ID,
		offering.PropertyID,
		offering.ServiceID,
		offering.Price,
		offering.Currency,
		offering.IsActive,
		offering.CreatedAt,
		offering.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property service",
			zap.Error(err),
			zap.String("property_id", offering.PropertyID.String()),
			zap.String("service_id", offering.ServiceID.String()),
		)
		return fmt.Errorf("create property service for property %s: %w", offering.PropertyID.String(), err)
	}

	return nil
}

func (r *propertyServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.PropertyService, error) {
	query := `
		SELECT id, property_id, service_id, price, currency, is_active, created_at, updated_at
		FROM property_services
		WHERE id = $1
	`

	var offering entity.PropertyService
	err := r.db.QueryRow(ctx, query, id).Scan(
		&offering.ID,
		&offering.PropertyID,
		&offering.ServiceID,
		&offering.Price,
		&offering.Currency,
		&offering.IsActive,
		&offering.CreatedAt,
		&offering.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property service by ID",
			zap.Error(err),
			zap.String("property_service_id", id.String()),
		)
		return nil, fmt.Errorf("find property service by ID %s: %w", id.String(), err)
	}

	return &offering, nil
}

func (r *propertyServiceRepository) FindByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*entity.PropertyService, error) {
	query := `
		SELECT id, property_id, service_id, price, currency, is_active, created_at, updated_at
		FROM property_services
		WHERE property_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		r.log.Error("Failed to find property services",
			zap.Error(err),
			zap.String("property_id", propertyID.String()),
		)
		return nil, fmt.Errorf("find property services for property %s: %w", propertyID.String(), err)
	}
	defer rows.Close()

	var offerings []*entity.PropertyService
	for rows.Next() {
		var offering entity.PropertyService
		err := rows.Scan(
			&offering.ID,
			&offering.PropertyID,
			&offering.ServiceID,
			&offering.Price,
			&offering.Currency,
			&offering.IsActive,
			&offering.CreatedAt,
			&offering.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan property service row", zap.Error(err))
			return nil, fmt.Errorf("scan property service row: %w", err)
		}
		offerings = append(offerings, &offering)
	}

	return offerings, nil
}
