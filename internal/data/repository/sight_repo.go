package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SightRepository interface {
	FindAll(ctx context.Context) ([]entity.Sight, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Sight, error)
	Create(ctx context.Context, sight *entity.Sight) error
	Update(ctx context.Context, sight *entity.Sight) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type sightRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSightRepository(db database.PgxIface, log *zap.Logger) SightRepository {
	return &sightRepository{
		db:  db,
		log: log.With(zap.String("repository", "sight")),
	}
}

const sightColumns = `id, name, region, description, image_url, created_at, updated_at`

func scanSight(row pgx.Row) (*entity.Sight, error) {
	var s entity.Sight
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Region,
		&s.Description,
		&s.ImageURL,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sightRepository) FindAll(ctx context.Context) ([]entity.Sight, error) {
	query := `SELECT ` + sightColumns + ` FROM sights ORDER BY name ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list sights", zap.Error(err))
		return nil, fmt.Errorf("find all sights: %w", err)
	}
	defer rows.Close()

	sights := []entity.Sight{}
	for rows.Next() {
		s, err := scanSight(rows)
		if err != nil {
			r.log.Error("Failed to scan sight row", zap.Error(err))
			return nil, fmt.Errorf("scan sight row: %w", err)
		}
		sights = append(sights, *s)
	}

	return sights, rows.Err()
}

func (r *sightRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Sight, error) {
	query := `SELECT ` + sightColumns + ` FROM sights WHERE id = $1`

	s, err := scanSight(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find sight by ID",
			zap.Error(err),
			zap.String("sight_id", id.String()),
		)
		return nil, fmt.Errorf("find sight by ID %s: %w", id, err)
	}

	return s, nil
}

func (r *sightRepository) Create(ctx context.Context, sight *entity.Sight) error {
	query := `
		INSERT INTO sights (` + sightColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		sight.ID,
		sight.Name,
		sight.Region,
		sight.Description,
		sight.ImageURL,
		sight.CreatedAt,
		sight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create sight",
			zap.Error(err),
			zap.String("name", sight.Name),
		)
		return fmt.Errorf("create sight %s: %w", sight.Name, err)
	}

	return nil
}

func (r *sightRepository) Update(ctx context.Context, sight *entity.Sight) error {
	query := `
		UPDATE sights
		SET name = $2, region = $3, description = $4, image_url = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		sight.ID,
		sight.Name,
		sight.Region,
		sight.Description,
		sight.ImageURL,
		sight.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update sight",
			zap.Error(err),
			zap.String("sight_id", sight.ID.String()),
		)
		return fmt.Errorf("update sight %s: %w", sight.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("sight %s not found", sight.ID)
	}

	return nil
}

func (r *sightRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM sights WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete sight",
			zap.Error(err),
			zap.String("sight_id", id.String()),
		)
		return fmt.Errorf("delete sight %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("sight %s not found", id)
	}

	return nil
}
