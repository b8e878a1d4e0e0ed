package entity

import (
	"time"
)

// Timestamps is embedded by every stored record
type Timestamps struct {
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Status is shared by bookings, custom requests and seller submissions
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Valid reports whether s belongs to the booking status enum
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

// ValidSubmission reports whether s is allowed on a seller submission
func (s Status) ValidSubmission() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}
