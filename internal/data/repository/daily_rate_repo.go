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

type DailyRateRepository interface {
	Create(ctx context.Context, rate *entity.DailyRate) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyRate, error)
	FindByPlanAndDate(ctx context.Context, ratePlanID uuid.UUID, date time.Time) (*entity.DailyRate, error)
	// FindByPlanAndRange returns the plan's rates with rate_date in [from, to],
	// both bounds inclusive.
	FindByPlanAndRange(ctx context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]*entity.DailyRate, error)
	Update(ctx context.Context, rate *entity.DailyRate) error
	Delete(ctx context.Context, id uuid.UUID) error

	// UpsertBatch writes a full date range atomically.
	UpsertBatch(ctx context.Context, rates []*entity.DailyRate) error
}

type dailyRateRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDailyRateRepository(db database.PgxIface, log *zap.Logger) DailyRateRepository {
	return &dailyRateRepository{
		db:  db,
		log: log.With(zap.String("repository", "daily_rate")),
	}
}

func (r *dailyRateRepository) Create(ctx context.Context, rate *entity.DailyRate) error {
	query := `
		INSERT INTO daily_rates (id, rate_plan_id, rate_date, price, available_rooms, stop_sell, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		rate.ID,
		rate.RatePlanID,
		rate.RateDate,
		rate.Price,
		rate.AvailableRooms,
		rate.StopSell,
		rate.CreatedAt,
		rate.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create daily rate",
			zap.Error(err),
			zap.String("rate_plan_id", rate.RatePlanID.String()),
			zap.Time("rate_date", rate.RateDate),
		)
		return fmt.Errorf("create daily rate for plan %s on %s: %w",
			rate.RatePlanID.String(), rate.RateDate.Format("2006-01-02"), err)
	}

	return nil
}

func (r *dailyRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DailyRate, error) {
	query := `
		SELECT id, rate_plan_id, rate_date, price, available_rooms, stop_sell, created_at, updated_at
		FROM daily_rates
		WHERE id = $1
	`

	var rate entity.DailyRate
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rate.ID,
		&rate.RatePlanID,
		&rate.RateDate,
		&rate.Price,
		&rate.AvailableRooms,
		&rate.StopSell,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find daily rate by ID",
			zap.Error(err),
			zap.String("daily_rate_id", id.String()),
		)
		return nil, fmt.Errorf("find daily rate by ID %s: %w", id.String(), err)
	}

	return &rate, nil
}

func (r *dailyRateRepository) FindByPlanAndDate(ctx context.Context, ratePlanID uuid.UUID, date time.Time) (*entity.DailyRate, error) {
	query := `
		SELECT id, rate_plan_id, rate_date, price, available_rooms, stop_sell, created_at, updated_at
		FROM daily_rates
		WHERE rate_plan_id = $1 AND rate_date = $2
	`

	var rate entity.DailyRate
	err := r.db.QueryRow(ctx, query, ratePlanID, date).Scan(
		&rate.ID,
		&rate.RatePlanID,
		&rate.RateDate,
		&rate.Price,
		&rate.AvailableRooms,
		&rate.StopSell,
		&rate.CreatedAt,
		&rate.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find daily rate by plan and date",
			zap.Error(err),
			zap.String("rate_plan_id", ratePlanID.String()),
			zap.Time("rate_date", date),
		)
		return nil, fmt.Errorf("find daily rate for plan %s on %s: %w",
			ratePlanID.String(), date.Format("2006-01-02"), err)
	}

	return &rate, nil
}

func (r *dailyRateRepository) FindByPlanAndRange(ctx context.Context, ratePlanID uuid.UUID, from, to time.Time) ([]*entity.DailyRate, error) {
	query := `
		SELECT id, rate_plan_id, rate_date, price, available_rooms, stop_sell, created_at, updated_at
		FROM daily_rates
		WHERE rate_plan_id = $1 AND rate_date >= $2 AND rate_date <= $3
		ORDER BY rate_date
	`

	rows, err := r.db.Query(ctx, query, ratePlanID, from, to)
	if err != nil {
		r.log.Error("Failed to find daily rates by range",
			zap.Error(err),
			zap.String("rate_plan_id", ratePlanID.String()),
		)
		return nil, fmt.Errorf("find daily rates for plan %s: %w", ratePlanID.String(), err)
	}
	defer rows.Close()

	var rates []*entity.DailyRate
	for rows.Next() {
		var rate entity.DailyRate
		err := rows.Scan(
			&rate.ID,
			&rate.RatePlanID,
			&rate.RateDate,
			&rate.Price,
			&rate.AvailableRooms,
			&rate.StopSell,
			&rate.CreatedAt,
			&rate.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan daily rate row", zap.Error(err))
			return nil, fmt.Errorf("scan daily rate row: %w", err)
		}
		rates = append(rates, &rate)
	}

	return rates, nil
}

func (r *dailyRateRepository) Update(ctx context.Context, rate *entity.DailyRate) error {
	query := `
		UPDATE daily_rates
		SET price = $2, available_rooms = $3, stop_sell = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		rate.ID,
		rate.Price,
		rate.AvailableRooms,
		rate.StopSell,
		rate.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update daily rate",
			zap.Error(err),
			zap.String("daily_rate_id", rate.ID.String()),
		)
		return fmt.Errorf("update daily rate %s: %w", rate.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("daily rate %s not found", rate.ID.String())
	}

	return nil
}

func (r *dailyRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM daily_rates WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete daily rate",
			zap.Error(err),
			zap.String("daily_rate_id", id.String()),
		)
		return fmt.Errorf("delete daily rate %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("daily rate %s not found", id.String())
	}

	return nil
}

// UpsertBatch writes all rates inside one transaction so a bulk range update
// never leaves partial data behind.
func (r *dailyRateRepository) UpsertBatch(ctx context.Context, rates []*entity.DailyRate) error {
	if len(rates) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin daily rate batch", zap.Error(err))
		return fmt.Errorf("begin daily rate batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO daily_rates (id, rate_plan_id, rate_date, price, available_rooms, stop_sell, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (rate_plan_id, rate_date)
		DO UPDATE SET price = EXCLUDED.price,
		              available_rooms = EXCLUDED.available_rooms,
		              stop_sell = EXCLUDED.stop_sell,
		              updated_at = EXCLUDED.updated_at
	`

	for _, rate := range rates {
		_, err := tx.Exec(ctx, query,
			rate.ID,
			rate.RatePlanID,
			rate.RateDate,
			rate.Price,
			rate.AvailableRooms,
			rate.StopSell,
			rate.CreatedAt,
			rate.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to upsert daily rate in batch",
				zap.Error(err),
				zap.String("rate_plan_id", rate.RatePlanID.String()),
				zap.Time("rate_date", rate.RateDate),
			)
			return fmt.Errorf("upsert daily rate for %s: %w", rate.RateDate.Format("2006-01-02"), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit daily rate batch", zap.Error(err))
		return fmt.Errorf("commit daily rate batch: %w", err)
	}

	r.log.Info("Daily rate batch upserted", zap.Int("count", len(rates)))
	return nil
}
