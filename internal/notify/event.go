// Package notify turns record creation into operator and customer emails.
// The API side publishes events; cmd/notifier consumes and mails them.
package notify

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type Kind string

const (
	KindBookingCreated       Kind = "booking.created"
	KindCustomRequestCreated Kind = "custom_request.created"
)

type Event struct {
	Kind          Kind                      `json:"kind"`
	Booking       *entity.Booking           `json:"booking,omitempty"`
	CustomRequest *entity.CustomTourRequest `json:"customRequest,omitempty"`
	OccurredAt    time.Time                 `json:"occurredAt"`
}

// Key partitions events by record so redeliveries stay ordered
func (e Event) Key() string {
	switch {
	case e.Booking != nil:
		return e.Booking.ID.String()
	case e.CustomRequest != nil:
		return e.CustomRequest.ID.String()
	}
	return string(e.Kind)
}
