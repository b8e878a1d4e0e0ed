package request

type CreateSubmissionRequest struct {
	Title        string   `json:"title" validate:"required"`
	Duration     string   `json:"duration"`
	Price        string   `json:"price"`
	Season       string   `json:"season"`
	TourType     string   `json:"tourType"`
	Description  string   `json:"description" validate:"required"`
	Highlights   []string `json:"highlights"`
	Itinerary    []string `json:"itinerary"`
	Image        string   `json:"image"`
	ContactName  string   `json:"contactName" validate:"required"`
	ContactEmail string   `json:"contactEmail" validate:"required,email"`
}

type UpdateSubmissionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending approved rejected"`
}
