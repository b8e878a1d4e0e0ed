package request

type UpdateContentRequest struct {
	HeroHeadline    string `json:"heroHeadline"`
	HeroSubheadline string `json:"heroSubheadline"`
	ContactEmail    string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone    string `json:"contactPhone"`
}

type SightRequest struct {
	Name        string `json:"name" validate:"required"`
	Region      string `json:"region"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

type BlogPostRequest struct {
	Title      string `json:"title" validate:"required"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content" validate:"required"`
	CoverImage string `json:"coverImage"`
}
