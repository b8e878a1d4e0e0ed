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

type BlogRepository interface {
	FindAll(ctx context.Context) ([]entity.BlogPost, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)
	Create(ctx context.Context, post *entity.BlogPost) error
	Update(ctx context.Context, post *entity.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBlogRepository(db database.PgxIface, log *zap.Logger) BlogRepository {
	return &blogRepository{
		db:  db,
		log: log.With(zap.String("repository", "blog")),
	}
}

const blogColumns = `id, title, excerpt, content, cover_image, created_at, updated_at`

func scanBlogPost(row pgx.Row) (*entity.BlogPost, error) {
	var p entity.BlogPost
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Excerpt,
		&p.Content,
		&p.CoverImage,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns posts newest first
func (r *blogRepository) FindAll(ctx context.Context) ([]entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list blog posts", zap.Error(err))
		return nil, fmt.Errorf("find all blog posts: %w", err)
	}
	defer rows.Close()

	posts := []entity.BlogPost{}
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			r.log.Error("Failed to scan blog post row", zap.Error(err))
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		posts = append(posts, *p)
	}

	return posts, rows.Err()
}

func (r *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error) {
	query := `SELECT ` + blogColumns + ` FROM blog_posts WHERE id = $1`

	p, err := scanBlogPost(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find blog post by ID",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return nil, fmt.Errorf("find blog post by ID %s: %w", id, err)
	}

	return p, nil
}

func (r *blogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	query := `
		INSERT INTO blog_posts (` + blogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Excerpt,
		post.Content,
		post.CoverImage,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create blog post",
			zap.Error(err),
			zap.String("title", post.Title),
		)
		return fmt.Errorf("create blog post: %w", err)
	}

	return nil
}

func (r *blogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = $2, excerpt = $3, content = $4, cover_image = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		post.ID,
		post.Title,
		post.Excerpt,
		post.Content,
		post.CoverImage,
		post.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update blog post",
			zap.Error(err),
			zap.String("post_id", post.ID.String()),
		)
		return fmt.Errorf("update blog post %s: %w", post.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", post.ID)
	}

	return nil
}

func (r *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete blog post",
			zap.Error(err),
			zap.String("post_id", id.String()),
		)
		return fmt.Errorf("delete blog post %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("blog post %s not found", id)
	}

	return nil
}
