package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TourRepository interface {
	FindAll(ctx context.Context) ([]entity.Tour, error)
	FindByID(ctx context.Context, id int64) (*entity.Tour, error)
	Create(ctx context.Context, tour *entity.Tour) error
	Update(ctx context.Context, tour *entity.Tour) error
	Delete(ctx context.Context, id int64) error
}

type tourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTourRepository(db database.PgxIface, log *zap.Logger) TourRepository {
	return &tourRepository{
		db:  db,
		log: log.With(zap.String("repository", "tour")),
	}
}

const tourColumns = `id, title, duration, tour_type, season, description, image, price,
	highlights, itinerary, packing_list, practical_info, locations, created_at, updated_at`

func scanTour(row pgx.Row) (*entity.Tour, error) {
	var t entity.Tour
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Duration,
		&t.TourType,
		&t.Season,
		&t.Description,
		&t.Image,
		&t.Price,
		&t.Highlights,
		&t.Itinerary,
		&t.PackingList,
		&t.PracticalInfo,
		&t.Locations,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FindAll returns the catalog ordered by id
func (r *tourRepository) FindAll(ctx context.Context) ([]entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours ORDER BY id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("find all tours: %w", err)
	}
	defer rows.Close()

	tours := []entity.Tour{}
	for rows.Next() {
		t, err := scanTour(rows)
		if err != nil {
			r.log.Error("Failed to scan tour row", zap.Error(err))
			return nil, fmt.Errorf("scan tour row: %w", err)
		}
		tours = append(tours, *t)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate tour rows: %w", err)
	}

	return tours, nil
}

func (r *tourRepository) FindByID(ctx context.Context, id int64) (*entity.Tour, error) {
	query := `SELECT ` + tourColumns + ` FROM tours WHERE id = $1`

	t, err := scanTour(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tour by ID",
			zap.Error(err),
			zap.Int64("tour_id", id),
		)
		return nil, fmt.Errorf("find tour by ID %d: %w", id, err)
	}

	return t, nil
}

func (r *tourRepository) Create(ctx context.Context, tour *entity.Tour) error {
	query := `
		INSERT INTO tours (` + tourColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Duration,
		tour.TourType,
		tour.Season,
		tour.Description,
		tour.Image,
		tour.Price,
		nonNil(tour.Highlights),
		itineraryOrEmpty(tour.Itinerary),
		nonNil(tour.PackingList),
		tour.PracticalInfo,
		locationsOrEmpty(tour.Locations),
		tour.CreatedAt,
		tour.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create tour",
			zap.Error(err),
			zap.Int64("tour_id", tour.ID),
			zap.String("title", tour.Title),
		)
		return fmt.Errorf("create tour %d: %w", tour.ID, err)
	}

	return nil
}

func (r *tourRepository) Update(ctx context.Context, tour *entity.Tour) error {
	query := `
		UPDATE tours
		SET title = $2, duration = $3, tour_type = $4, season = $5,
		    description = $6, image = $7, price = $8, highlights = $9,
		    itinerary = $10, packing_list = $11, practical_info = $12,
		    locations = $13, updated_at = $14
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		tour.ID,
		tour.Title,
		tour.Duration,
		tour.TourType,
		tour.Season,
		tour.Description,
		tour.Image,
		tour.Price,
		nonNil(tour.Highlights),
		itineraryOrEmpty(tour.Itinerary),
		nonNil(tour.PackingList),
		tour.PracticalInfo,
		locationsOrEmpty(tour.Locations),
		tour.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update tour",
			zap.Error(err),
			zap.Int64("tour_id", tour.ID),
		)
		return fmt.Errorf("update tour %d: %w", tour.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %d not found", tour.ID)
	}

	return nil
}

func (r *tourRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tours WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tour",
			zap.Error(err),
			zap.Int64("tour_id", id),
		)
		return fmt.Errorf("delete tour %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tour %d not found", id)
	}

	r.log.Info("Tour deleted", zap.Int64("tour_id", id))
	return nil
}

func itineraryOrEmpty(days []entity.ItineraryDay) []entity.ItineraryDay {
	if days == nil {
		return []entity.ItineraryDay{}
	}
	return days
}

func locationsOrEmpty(locs []entity.MapLocation) []entity.MapLocation {
	if locs == nil {
		return []entity.MapLocation{}
	}
	return locs
}
