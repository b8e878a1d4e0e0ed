package entity

// SellerSubmission is a tour proposal awaiting admin review. ID is a uuid
// string remotely and a millisecond timestamp when only stored locally.
type SellerSubmission struct {
	ID           string   `db:"id" json:"id"`
	Title        string   `db:"title" json:"title"`
	Duration     string   `db:"duration" json:"duration"`
	Price        string   `db:"price" json:"price"`
	Season       string   `db:"season" json:"season"`
	TourType     string   `db:"tour_type" json:"tourType"`
	Description  string   `db:"description" json:"description"`
	Highlights   []string `db:"highlights" json:"highlights"`
	Itinerary    []string `db:"itinerary" json:"itinerary"`
	Image        string   `db:"image" json:"image"`
	ContactName  string   `db:"contact_name" json:"contactName"`
	ContactEmail string   `db:"contact_email" json:"contactEmail"`
	OwnerID      string   `db:"owner_id" json:"ownerId"`
	Status       Status   `db:"status" json:"status"`
	Timestamps
}
