package request

import "tourism-booking/internal/data/entity"

// TourRequest creates a tour. ID 0 lets the server assign one.
type TourRequest struct {
	ID            int64                 `json:"id" validate:"gte=0"`
	Title         string                `json:"title" validate:"required"`
	Duration      string                `json:"duration" validate:"required"`
	TourType      string                `json:"tourType"`
	Season        string                `json:"season"`
	Description   string                `json:"description"`
	Image         string                `json:"image"`
	Price         string                `json:"price" validate:"required"`
	Highlights    []string              `json:"highlights"`
	Itinerary     []entity.ItineraryDay `json:"itinerary" validate:"dive"`
	PackingList   []string              `json:"packingList"`
	PracticalInfo entity.PracticalInfo  `json:"practicalInfo"`
	Locations     []entity.MapLocation  `json:"locations"`
}

// UpdateTourRequest is a partial update; nil fields are left alone
type UpdateTourRequest struct {
	Title         *string               `json:"title" validate:"omitempty,min=1"`
	Duration      *string               `json:"duration"`
	TourType      *string               `json:"tourType"`
	Season        *string               `json:"season"`
	Description   *string               `json:"description"`
	Image         *string               `json:"image"`
	Price         *string               `json:"price"`
	Highlights    []string              `json:"highlights"`
	Itinerary     []entity.ItineraryDay `json:"itinerary"`
	PackingList   []string              `json:"packingList"`
	PracticalInfo *entity.PracticalInfo `json:"practicalInfo"`
	Locations     []entity.MapLocation  `json:"locations"`
}
