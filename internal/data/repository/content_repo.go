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

type ContentRepository interface {
	Get(ctx context.Context) (*entity.ContentSettings, error)
	Upsert(ctx context.Context, in entity.ContentSettings) (*entity.ContentSettings, error)
}

type contentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewContentRepository(db database.PgxIface, log *zap.Logger) ContentRepository {
	return &contentRepository{
		db:  db,
		log: log.With(zap.String("repository", "content")),
	}
}

// Get returns nil, nil until the settings row has been written once
func (r *contentRepository) Get(ctx context.Context) (*entity.ContentSettings, error) {
	query := `
		SELECT hero_headline, hero_subheadline, contact_email, contact_phone, updated_at
		FROM content_settings
		WHERE id = $1
	`

	var c entity.ContentSettings
	err := r.db.QueryRow(ctx, query, entity.ContentSettingsID).Scan(
		&c.HeroHeadline,
		&c.HeroSubheadline,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to load content settings", zap.Error(err))
		return nil, fmt.Errorf("get content settings: %w", err)
	}

	return &c, nil
}

// Upsert merges in over the stored row; empty fields keep their old value
func (r *contentRepository) Upsert(ctx context.Context, in entity.ContentSettings) (*entity.ContentSettings, error) {
	query := `
		INSERT INTO content_settings (id, hero_headline, hero_subheadline, contact_email, contact_phone, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (id) DO UPDATE SET
			hero_headline    = COALESCE(NULLIF($2, ''), content_settings.hero_headline),
			hero_subheadline = COALESCE(NULLIF($3, ''), content_settings.hero_subheadline),
			contact_email    = COALESCE(NULLIF($4, ''), content_settings.contact_email),
			contact_phone    = COALESCE(NULLIF($5, ''), content_settings.contact_phone),
			updated_at       = NOW()
		RETURNING hero_headline, hero_subheadline, contact_email, contact_phone, updated_at
	`

	var c entity.ContentSettings
	err := r.db.QueryRow(ctx, query,
		entity.ContentSettingsID,
		in.HeroHeadline,
		in.HeroSubheadline,
		in.ContactEmail,
		in.ContactPhone,
	).Scan(
		&c.HeroHeadline,
		&c.HeroSubheadline,
		&c.ContactEmail,
		&c.ContactPhone,
		&c.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to upsert content settings", zap.Error(err))
		return nil, fmt.Errorf("upsert content settings: %w", err)
	}

	return &c, nil
}
