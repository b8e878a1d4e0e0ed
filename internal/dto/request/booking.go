package request

import "tourism-booking/internal/bookingflow"

// CreateBookingRequest carries both forms of the booking flow. The nested
// forms are validated step by step by the flow itself.
type CreateBookingRequest struct {
	TourID  int64               `json:"tourId" validate:"required,gte=1"`
	Details bookingflow.Details `json:"details" validate:"-"`
	Payment bookingflow.Payment `json:"payment" validate:"-"`
}

type QuoteRequest struct {
	Participants int `json:"participants"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected completed"`
}
