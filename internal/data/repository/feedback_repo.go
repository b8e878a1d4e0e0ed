package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FeedbackRepository interface {
	Create(ctx context.Context, fb *entity.Feedback) error
	FindAll(ctx context.Context) ([]entity.Feedback, error)
	UpdateResponse(ctx context.Context, id uuid.UUID, response string) error
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

func (r *feedbackRepository) Create(ctx context.Context, fb *entity.Feedback) error {
	if fb.ID == uuid.Nil {
		fb.ID = uuid.New()
	}

	query := `
		INSERT INTO feedback (id, name, rating, comments, admin_response, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		fb.ID,
		fb.Name,
		fb.Rating,
		fb.Comments,
		fb.AdminResponse,
		fb.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.Int("rating", fb.Rating),
		)
		return fmt.Errorf("create feedback: %w", err)
	}

	return nil
}

// FindAll returns feedback newest first
func (r *feedbackRepository) FindAll(ctx context.Context) ([]entity.Feedback, error) {
	query := `
		SELECT id, name, rating, comments, admin_response, created_at
		FROM feedback
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list feedback", zap.Error(err))
		return nil, fmt.Errorf("find all feedback: %w", err)
	}
	defer rows.Close()

	entries := []entity.Feedback{}
	for rows.Next() {
		var fb entity.Feedback
		err := rows.Scan(
			&fb.ID,
			&fb.Name,
			&fb.Rating,
			&fb.Comments,
			&fb.AdminResponse,
			&fb.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan feedback row", zap.Error(err))
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		entries = append(entries, fb)
	}

	return entries, rows.Err()
}

func (r *feedbackRepository) UpdateResponse(ctx context.Context, id uuid.UUID, response string) error {
	query := `UPDATE feedback SET admin_response = $2 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, response)
	if err != nil {
		r.log.Error("Failed to respond to feedback",
			zap.Error(err),
			zap.String("feedback_id", id.String()),
		)
		return fmt.Errorf("update feedback response %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("feedback %s not found", id)
	}

	return nil
}
