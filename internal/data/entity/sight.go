package entity

import (
	"github.com/google/uuid"
)

type Sight struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Region      string    `db:"region" json:"region"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"imageUrl"`
	Timestamps
}

type BlogPost struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Title      string    `db:"title" json:"title"`
	Excerpt    string    `db:"excerpt" json:"excerpt"`
	Content    string    `db:"content" json:"content"`
	CoverImage string    `db:"cover_image" json:"coverImage,omitempty"`
	Timestamps
}
