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

type PropertyRepository interface {
	Create(ctx context.Context, property *entity.Property) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Property, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, property *entity.Property) error
}

type propertyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPropertyRepository(db database.PgxIface, log *zap.Logger) PropertyRepository {
	return &propertyRepository{
		db:  db,
		log: log.With(zap.String("repository", "property")),
	}
}

func (r *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	query := `
		INSERT INTO properties (id, name, address, city, country, phone, email, currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		property.ID,
		property.Name,
		property.Address,
		property.City,
		property.Country,
		property.Phone,
		property.Email,
		property.Currency,
		property.IsActive,
		property.CreatedAt,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create property",
			zap.Error(err),
			zap.String("name", property.Name),
		)
		return fmt.Errorf("create property %s: %w", property.Name, err)
	}

	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Property, error) {
	query := `
		SELECT id, name, address, city, country, phone, email, currency, is_active, created_at, updated_at
		FROM properties
		WHERE id = $1
	`

	var property entity.Property
	err := r.db.QueryRow(ctx, query, id).Scan(
		&property.ID,
		&property.Name,
		&property.Address,
		&property.City,
		&property.Country,
		&property.Phone,
		&property.Email,
		&property.Currency,
		&property.IsActive,
		&property.CreatedAt,
		&property.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find property by ID",
			zap.Error(err),
			zap.String("property_id", id.String()),
		)
		return nil, fmt.Errorf("find property by ID %s: %w", id.String(), err)
	}

	return &property, nil
}

func (r *propertyRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Property, error) {
	query := `
		SELECT id, name, address, city, country, phone, email, currency, is_active, created_at, updated_at
		FROM properties
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find properties", zap.Error(err))
		return nil, fmt.Errorf("find properties: %w", err)
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		var property entity.Property
		err := rows.Scan(
			&property.ID,
			&property.Name,
			&property.Address,
			&property.City,
			&property.Country,
			&property.Phone,
			&property.Email,
			&property.Currency,
			&property.IsActive,
			&property.CreatedAt,
			&property.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan property row", zap.Error(err))
			return nil, fmt.Errorf("scan property row: %w", err)
		}
		properties = append(properties, &property)
	}

	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM properties`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count properties", zap.Error(err))
		return 0, fmt.Errorf("count properties: %w", err)
	}

	return count, nil
}

func (r *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	query := `
		UPDATE properties
		SET name = $2, address = $3, city = $4, country = $5, phone = $6,
		    email = $7, currency = $8, is_active = $9, updated_at = $10
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		property.ID,
		property.Name,
		property.Address,
		property.City,
		property.Country,
		property.Phone,
		property.Email,
		property.Currency,
		property.IsActive,
		property.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update property",
			zap.Error(err),
			zap.String("property_id", property.ID.String()),
		)
		return fmt.Errorf("update property %s: %w", property.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("property %s not found", property.ID.String())
	}

	return nil
}
