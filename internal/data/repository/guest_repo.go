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

type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Guest, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type guestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewGuestRepository(db database.PgxIface, log *zap.Logger) GuestRepository {
	return &guestRepository{
		db:  db,
		log: log.With(zap.String("repository", "guest")),
	}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	query := `
		INSERT INTO guests (id, first_name, last_name, email, phone, nationality, id_number, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.Nationality,
		guest.IDNumber,
		guest.Notes,
		guest.CreatedAt,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create guest",
			zap.Error(err),
			zap.String("last_name", guest.LastName),
		)
		return fmt.Errorf("create guest %s %s: %w", guest.FirstName, guest.LastName, err)
	}

	return nil
}

func (r *guestRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, nationality, id_number, notes, created_at, updated_at
		FROM guests
		WHERE id = $1
	`

	var guest entity.Guest
	err := r.db.QueryRow(ctx, query, id).Scan(
		&guest.ID,
		&guest.FirstName,
		&guest.LastName,
		&guest.Email,
		&guest.Phone,
		&guest.Nationality,
		&guest.IDNumber,
		&guest.Notes,
		&guest.CreatedAt,
		&guest.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find guest by ID",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return nil, fmt.Errorf("find guest by ID %s: %w", id.String(), err)
	}

	return &guest, nil
}

func (r *guestRepository) FindAll(ctx context.Context, search string, limit, offset int) ([]*entity.Guest, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, nationality, id_number, notes, created_at, updated_at
		FROM guests
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
		ORDER BY last_name, first_name
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, search, limit, offset)
	if err != nil {
		r.log.Error("Failed to find guests",
			zap.Error(err),
			zap.String("search", search),
		)
		return nil, fmt.Errorf("find guests: %w", err)
	}
	defer rows.Close()

	var guests []*entity.Guest
	for rows.Next() {
		var guest entity.Guest
		err := rows.Scan(
			&guest.ID,
			&guest.FirstName,
			&guest.LastName,
			&guest.Email,
			&guest.Phone,
			&guest.Nationality,
			&guest.IDNumber,
			&guest.Notes,
			&guest.CreatedAt,
			&guest.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan guest row", zap.Error(err))
			return nil, fmt.Errorf("scan guest row: %w", err)
		}
		guests = append(guests, &guest)
	}

	return guests, nil
}

func (r *guestRepository) Count(ctx context.Context, search string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM guests
		WHERE ($1 = '' OR first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' OR email ILIKE '%' || $1 || '%')
	`

	var count int64
	err := r.db.QueryRow(ctx, query, search).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count guests", zap.Error(err))
		return 0, fmt.Errorf("count guests: %w", err)
	}

	return count, nil
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	query := `
		UPDATE guests
		SET first_name = $2, last_name = $3, email = $4, phone = $5,
		    nationality = $6, id_number = $7, notes = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		guest.ID,
		guest.FirstName,
		guest.LastName,
		guest.Email,
		guest.Phone,
		guest.Nationality,
		guest.IDNumber,
		guest.Notes,
		guest.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update guest",
			zap.Error(err),
			zap.String("guest_id", guest.ID.String()),
		)
		return fmt.Errorf("update guest %s: %w", guest.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", guest.ID.String())
	}

	return nil
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM guests WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete guest",
			zap.Error(err),
			zap.String("guest_id", id.String()),
		)
		return fmt.Errorf("delete guest %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("guest %s not found", id.String())
	}

	r.log.Info("Guest deleted", zap.String("guest_id", id.String()))
	return nil
}
