package repository

import (
	"context"
	"fmt"

	"hotel-pms/internal/data/entity"
	"hotel-pms/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationServiceRepository interface {
	Create(ctx context.Context, line *entity.ReservationService) error
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.ReservationService, error)
	SumByReservationID(ctx context.Context, reservationID uuid.UUID) (float64, error)
}

type reservationServiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationServiceRepository(db database.PgxIface, log *zap.Logger) ReservationServiceRepository {
	return &reservationServiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation_service")),
	}
}

func (r *reservationServiceRepository) Create(ctx context.Context, line *entity.ReservationService) error {
	query := `
		INSERT INTO reservation_services (id, reservation_id, property_service_id, quantity, unit_price, total_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		line.ID,
		line.ReservationID,
		line.PropertyServiceID,
		line.Quantity,
		line.UnitPrice,
		line.TotalPrice,
		line.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation service line",
			zap.Error(err),
			zap.String("reservation_id", line.ReservationID.String()),
		)
		return fmt.Errorf("create service line for reservation %s: %w", line.ReservationID.String(), err)
	}

	return nil
}

func (r *reservationServiceRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.ReservationService, error) {
	query := `
		SELECT id, reservation_id, property_service_id, quantity, unit_price, total_price, created_at
		FROM reservation_services
		WHERE reservation_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find reservation service lines",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find service lines for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	var lines []*entity.ReservationService
	for rows.Next() {
		var line entity.ReservationService
		err := rows.Scan(
			&line.ID,
			&line.ReservationID,
			&line.PropertyServiceID,
			&line.Quantity,
			&line.UnitPrice,
			&line.TotalPrice,
			&line.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation service row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation service row: %w", err)
		}
		lines = append(lines, &line)
	}

	return lines, nil
}

func (r *reservationServiceRepository) SumByReservationID(ctx context.Context, reservationID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(SUM(total_price), 0) FROM reservation_services WHERE reservation_id = $1`

	var sum float64
	err := r.db.QueryRow(ctx, query, reservationID).Scan(&sum)
	if err != nil {
		r.log.Error("Failed to sum reservation service lines",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return 0, fmt.Errorf("sum service lines for reservation %s: %w", reservationID.String(), err)
	}

	return sum, nil
}
