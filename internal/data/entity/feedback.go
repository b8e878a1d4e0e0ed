package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Rating        int       `db:"rating" json:"rating"` // 1-5
	Comments      string    `db:"comments" json:"comments"`
	AdminResponse *string   `db:"admin_response" json:"adminResponse,omitempty"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
