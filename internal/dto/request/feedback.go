package request

type CreateFeedbackRequest struct {
	Name     string `json:"name" validate:"required"`
	Rating   int    `json:"rating" validate:"gte=1,lte=5"`
	Comments string `json:"comments" validate:"required,min=10"`
}

type RespondFeedbackRequest struct {
	Response string `json:"response" validate:"required"`
}
