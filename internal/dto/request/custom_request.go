package request

type CreateCustomRequest struct {
	GroupSize       int      `json:"groupSize" validate:"gte=1"`
	StartDate       string   `json:"startDate" validate:"required"`
	EndDate         string   `json:"endDate" validate:"required"`
	StartLocation   string   `json:"startLocation"`
	EndLocation     string   `json:"endLocation"`
	Sights          []string `json:"sights"`
	Activities      []string `json:"activities"`
	Pace            string   `json:"pace"`
	Accommodation   string   `json:"accommodation"`
	Name            string   `json:"name" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone"`
	Budget          string   `json:"budget"`
	SpecialRequests string   `json:"specialRequests"`
}
