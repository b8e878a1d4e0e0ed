package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomRequestRepository interface {
	Create(ctx context.Context, req *entity.CustomTourRequest) error
	FindAll(ctx context.Context) ([]entity.CustomTourRequest, error)
	FindByUserID(ctx context.Context, userID string) ([]entity.CustomTourRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error
}

type customRequestRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomRequestRepository(db database.PgxIface, log *zap.Logger) CustomRequestRepository {
	return &customRequestRepository{
		db:  db,
		log: log.With(zap.String("repository", "custom_request")),
	}
}

const customRequestColumns = `id, group_size, start_date, end_date, start_location, end_location,
	sights, activities, pace, accommodation, name, email, phone, budget,
	special_requests, user_id, status, created_at, updated_at`

func scanCustomRequest(row pgx.Row) (*entity.CustomTourRequest, error) {
	var c entity.CustomTourRequest
	err := row.Scan(
		&c.ID,
		&c.GroupSize,
		&c.StartDate,
		&c.EndDate,
		&c.StartLocation,
		&c.EndLocation,
		&c.Sights,
		&c.Activities,
		&c.Pace,
		&c.Accommodation,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Budget,
		&c.SpecialRequests,
		&c.UserID,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customRequestRepository) Create(ctx context.Context, req *entity.CustomTourRequest) error {
	if req.UserID == "" {
		return ErrSignInRequired
	}
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	if req.Status == "" {
		req.Status = entity.StatusPending
	}

	query := `
		INSERT INTO custom_requests (` + customRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		req.ID,
		req.GroupSize,
		req.StartDate,
		req.EndDate,
		req.StartLocation,
		req.EndLocation,
		nonNil(req.Sights),
		nonNil(req.Activities),
		req.Pace,
		req.Accommodation,
		req.Name,
		req.Email,
		req.Phone,
		req.Budget,
		req.SpecialRequests,
		req.UserID,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create custom request",
			zap.Error(err),
			zap.String("user_id", req.UserID),
		)
		return fmt.Errorf("create custom request: %w", err)
	}

	return nil
}

func (r *customRequestRepository) FindAll(ctx context.Context) ([]entity.CustomTourRequest, error) {
	query := `SELECT ` + customRequestColumns + ` FROM custom_requests ORDER BY created_at DESC`
	return r.list(ctx, "find all custom requests", query)
}

func (r *customRequestRepository) FindByUserID(ctx context.Context, userID string) ([]entity.CustomTourRequest, error) {
	query := `SELECT ` + customRequestColumns + ` FROM custom_requests WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "find custom requests by user ID", query, userID)
}

func (r *customRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.Status) error {
	query := `UPDATE custom_requests SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update custom request status",
			zap.Error(err),
			zap.String("request_id", id.String()),
		)
		return fmt.Errorf("update custom request status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("custom request %s not found", id)
	}

	return nil
}

func (r *customRequestRepository) list(ctx context.Context, op, query string, args ...any) ([]entity.CustomTourRequest, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query custom requests", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []entity.CustomTourRequest{}
	for rows.Next() {
		c, err := scanCustomRequest(rows)
		if err != nil {
			r.log.Error("Failed to scan custom request row", zap.Error(err))
			return nil, fmt.Errorf("scan custom request row: %w", err)
		}
		items = append(items, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
