package entity

import (
	"github.com/google/uuid"
)

// CustomTourRequest is a bespoke itinerary inquiry, never auto-fulfilled
type CustomTourRequest struct {
	ID              uuid.UUID `db:"id" json:"id"`
	GroupSize       int       `db:"group_size" json:"groupSize"`
	StartDate       string    `db:"start_date" json:"startDate"`
	EndDate         string    `db:"end_date" json:"endDate"`
	StartLocation   string    `db:"start_location" json:"startLocation"`
	EndLocation     string    `db:"end_location" json:"endLocation"`
	Sights          []string  `db:"sights" json:"sights"`
	Activities      []string  `db:"activities" json:"activities"`
	Pace            string    `db:"pace" json:"pace"`
	Accommodation   string    `db:"accommodation" json:"accommodation"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	Phone           string    `db:"phone" json:"phone"`
	Budget          string    `db:"budget" json:"budget"`
	SpecialRequests string    `db:"special_requests" json:"specialRequests"`
	UserID          string    `db:"user_id" json:"userId"`
	Status          Status    `db:"status" json:"status"`
	Timestamps
}
