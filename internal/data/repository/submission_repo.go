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

type SubmissionRepository interface {
	Create(ctx context.Context, sub *entity.SellerSubmission) error
	FindAll(ctx context.Context) ([]entity.SellerSubmission, error)
	FindByID(ctx context.Context, id string) (*entity.SellerSubmission, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]entity.SellerSubmission, error)
	FindByContactEmail(ctx context.Context, email string) ([]entity.SellerSubmission, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}

type submissionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSubmissionRepository(db database.PgxIface, log *zap.Logger) SubmissionRepository {
	return &submissionRepository{
		db:  db,
		log: log.With(zap.String("repository", "seller_submission")),
	}
}

const submissionColumns = `id, title, duration, price, season, tour_type, description,
	highlights, itinerary, image, contact_name, contact_email, owner_id, status,
	created_at, updated_at`

func scanSubmission(row pgx.Row) (*entity.SellerSubmission, error) {
	var s entity.SellerSubmission
	err := row.Scan(
		&s.ID,
		&s.Title,
		&s.Duration,
		&s.Price,
		&s.Season,
		&s.TourType,
		&s.Description,
		&s.Highlights,
		&s.Itinerary,
		&s.Image,
		&s.ContactName,
		&s.ContactEmail,
		&s.OwnerID,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *submissionRepository) Create(ctx context.Context, sub *entity.SellerSubmission) error {
	if sub.OwnerID == "" {
		return ErrSignInRequired
	}
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.Status == "" {
		sub.Status = entity.StatusPending
	}

	query := `
		INSERT INTO seller_submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.db.Exec(ctx, query,
		sub.ID,
		sub.Title,
		sub.Duration,
		sub.Price,
		sub.Season,
		sub.TourType,
		sub.Description,
		nonNil(sub.Highlights),
		nonNil(sub.Itinerary),
		sub.Image,
		sub.ContactName,
		sub.ContactEmail,
		sub.OwnerID,
		sub.Status,
		sub.CreatedAt,
		sub.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create seller submission",
			zap.Error(err),
			zap.String("owner_id", sub.OwnerID),
			zap.String("title", sub.Title),
		)
		return fmt.Errorf("create seller submission: %w", err)
	}

	return nil
}

func (r *submissionRepository) FindAll(ctx context.Context) ([]entity.SellerSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM seller_submissions ORDER BY created_at DESC`
	return r.list(ctx, "find all seller submissions", query)
}

func (r *submissionRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]entity.SellerSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM seller_submissions WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, "find seller submissions by owner", query, ownerID)
}

func (r *submissionRepository) FindByContactEmail(ctx context.Context, email string) ([]entity.SellerSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM seller_submissions WHERE LOWER(contact_email) = LOWER($1) ORDER BY created_at DESC`
	return r.list(ctx, "find seller submissions by contact email", query, email)
}

func (r *submissionRepository) FindByID(ctx context.Context, id string) (*entity.SellerSubmission, error) {
	query := `SELECT ` + submissionColumns + ` FROM seller_submissions WHERE id = $1`

	s, err := scanSubmission(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seller submission by ID",
			zap.Error(err),
			zap.String("submission_id", id),
		)
		return nil, fmt.Errorf("find seller submission by ID %s: %w", id, err)
	}

	return s, nil
}

func (r *submissionRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) error {
	query := `UPDATE seller_submissions SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update seller submission status",
			zap.Error(err),
			zap.String("submission_id", id),
		)
		return fmt.Errorf("update seller submission status %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seller submission %s not found", id)
	}

	return nil
}

func (r *submissionRepository) list(ctx context.Context, op, query string, args ...any) ([]entity.SellerSubmission, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query seller submissions", zap.String("op", op), zap.Error(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []entity.SellerSubmission{}
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			r.log.Error("Failed to scan seller submission row", zap.Error(err))
			return nil, fmt.Errorf("scan seller submission row: %w", err)
		}
		items = append(items, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}
