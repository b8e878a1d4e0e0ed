package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is an issued bearer token
type Session struct {
	ID        uuid.UUID  `db:"id"`
	UserID    string     `db:"user_id"`
	Role      Role       `db:"role"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}
