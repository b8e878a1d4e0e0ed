package entity

import (
	"github.com/google/uuid"
)

// Booking is a booking request. PricePerPerson, TotalPrice and TotalAmount
// are snapshots taken at submission and never recomputed.
type Booking struct {
	ID             uuid.UUID `db:"id" json:"id"`
	TourID         int64     `db:"tour_id" json:"tourId"`
	TourTitle      string    `db:"tour_title" json:"tourTitle"`
	Name           string    `db:"name" json:"name"`
	Email          string    `db:"email" json:"email"`
	Phone          string    `db:"phone" json:"phone"`
	Participants   int       `db:"participants" json:"participants"`
	StartDate      string    `db:"start_date" json:"startDate"`
	EndDate        string    `db:"end_date" json:"endDate"`
	Notes          string    `db:"notes" json:"notes"`
	PricePerPerson string    `db:"price_per_person" json:"pricePerPerson"`
	TotalPrice     string    `db:"total_price" json:"totalPrice"`
	TotalAmount    float64   `db:"total_amount" json:"totalAmount"`
	UserID         string    `db:"user_id" json:"userId"`
	Status         Status    `db:"status" json:"status"`
	Timestamps
}
