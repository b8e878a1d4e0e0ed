package response

import (
	"tourism-booking/internal/catalog"
	"tourism-booking/internal/data/entity"
)

// TourListResponse is the visible catalog. Message explains a fallback.
type TourListResponse struct {
	Tours         []entity.Tour   `json:"tours"`
	Options       catalog.Options `json:"options"`
	Total         int             `json:"total"`
	UsingFallback bool            `json:"using_fallback"`
	Message       string          `json:"message,omitempty"`
}

type QuoteResponse struct {
	TourID         int64   `json:"tourId"`
	Participants   int     `json:"participants"`
	PricePerPerson string  `json:"pricePerPerson"`
	UnitPrice      float64 `json:"unitPrice"`
	TotalAmount    float64 `json:"totalAmount"`
	TotalPrice     string  `json:"totalPrice"`
}
