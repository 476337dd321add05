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

type RestaurantTableRepository interface {
	Create(ctx context.Context, table *entity.RestaurantTable) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantTable, error)
	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantTable, error)
	Update(ctx context.Context, table *entity.RestaurantTable) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindAvailable(ctx context.Context, restaurantID uuid.UUID, start, end time.Time, partySize int) ([]*entity.RestaurantTable, error)
	UpdateStatusIf(ctx context.Context, tableID uuid.UUID, from, to entity.TableStatus) (bool, error)
}

type restaurantTableRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRestaurantTableRepository(db database.PgxIface, log *zap.Logger) RestaurantTableRepository {
	return &restaurantTableRepository{
		db:  db,
		log: log.With(zap.String("repository", "restaurant_table")),
	}
}

func (r *restaurantTableRepository) Create(ctx context.Context, table *entity.RestaurantTable) error {
	query := `
		INSERT INTO restaurant_tables (id, restaurant_id, table_number, capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		table.ID,
		table.RestaurantID,
		table.TableNumber,
		table.Capacity,
		table.Status,
		table.CreatedAt,
		table.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create restaurant table",
			zap.Error(err),
			zap.String("table_number", table.TableNumber),
		)
		return fmt.Errorf("create table %s: %w", table.TableNumber, err)
	}

	return nil
}

func (r *restaurantTableRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RestaurantTable, error) {
	query := `
		SELECT id, restaurant_id, table_number, capacity, status, created_at, updated_at
		FROM restaurant_tables
		WHERE id = $1
	`

	var table entity.RestaurantTable
	err := r.db.QueryRow(ctx, query, id).Scan(
		&table.ID,
		&table.RestaurantID,
		&table.TableNumber,
		&table.Capacity,
		&table.Status,
		&table.CreatedAt,
		&table.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find table by ID",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return nil, fmt.Errorf("find table by ID %s: %w", id.String(), err)
	}

	return &table, nil
}

func (r *restaurantTableRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*entity.RestaurantTable, error) {
	query := `
		SELECT id, restaurant_id, table_number, capacity, status, created_at, updated_at
		FROM restaurant_tables
		WHERE restaurant_id = $1
		ORDER BY table_number
	`

	rows, err := r.db.Query(ctx, query, restaurantID)
	if err != nil {
		r.log.Error("Failed to find tables by restaurant ID",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
		)
		return nil, fmt.Errorf("find tables for restaurant %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

func (r *restaurantTableRepository) Update(ctx context.Context, table *entity.RestaurantTable) error {
	query := `
		UPDATE restaurant_tables
		SET table_number = $2, capacity = $3, status = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		table.ID,
		table.TableNumber,
		table.Capacity,
		table.Status,
		table.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update table",
			zap.Error(err),
			zap.String("table_id", table.ID.String()),
		)
		return fmt.Errorf("update table %s: %w", table.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table %s not found", table.ID.String())
	}

	return nil
}

func (r *restaurantTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM restaurant_tables WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete table",
			zap.Error(err),
			zap.String("table_id", id.String()),
		)
		return fmt.Errorf("delete table %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("table %s not found", id.String())
	}

	r.log.Info("Restaurant table deleted", zap.String("table_id", id.String()))
	return nil
}

// FindAvailable lists serviceable tables with enough capacity that have no
// confirmed or seated booking overlapping the [start, end) window.
func (r *restaurantTableRepository) FindAvailable(ctx context.Context, restaurantID uuid.UUID, start, end time.Time, partySize int) ([]*entity.RestaurantTable, error) {
	query := `
		SELECT id, restaurant_id, table_number, capacity, status, created_at, updated_at
		FROM restaurant_tables t
		WHERE t.restaurant_id = $1
		  AND t.capacity >= $2
		  AND t.status <> 'out_of_service'
		  AND NOT EXISTS (
			SELECT 1 FROM table_bookings b
			WHERE b.assigned_table_id = t.id
			  AND b.status IN ('confirmed', 'seated')
			  AND b.booking_time < $4
			  AND b.booking_time + make_interval(mins => b.duration_minutes) > $3
		  )
		ORDER BY t.capacity, t.table_number
	`

	rows, err := r.db.Query(ctx, query, restaurantID, partySize, start, end)
	if err != nil {
		r.log.Error("Failed to find available tables",
			zap.Error(err),
			zap.String("restaurant_id", restaurantID.String()),
			zap.Time("start", start),
			zap.Int("party_size", partySize),
		)
		return nil, fmt.Errorf("find available tables for restaurant %s: %w", restaurantID.String(), err)
	}
	defer rows.Close()

	return r.scanTables(rows)
}

// UpdateStatusIf flips the table status only from the expected current status,
// so two concurrent seatings of the same table cannot both succeed.
func (r *restaurantTableRepository) UpdateStatusIf(ctx context.Context, tableID uuid.UUID, from, to entity.TableStatus) (bool, error) {
	query := `UPDATE restaurant_tables SET status = $3, updated_at = NOW() WHERE id = $1 AND status = $2`

	result, err := r.db.Exec(ctx, query, tableID, from, to)
	if err != nil {
		r.log.Error("Failed to update table status",
			zap.Error(err),
			zap.String("table_id", tableID.String()),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
		return false, fmt.Errorf("update table %s status to %s: %w", tableID.String(), string(to), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *restaurantTableRepository) scanTables(rows pgx.Rows) ([]*entity.RestaurantTable, error) {
	var tables []*entity.RestaurantTable
	for rows.Next() {
		var table entity.RestaurantTable
		err := rows.Scan(
			&table.ID,
			&table.RestaurantID,
			&table.TableNumber,
			&table.Capacity,
			&table.Status,
			&table.CreatedAt,
			&table.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan table row", zap.Error(err))
			return nil, fmt.Errorf("scan table row: %w", err)
		}
		tables = append(tables, &table)
	}

	return tables, nil
}
