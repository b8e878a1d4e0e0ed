package entity

// Tour is a sellable itinerary shown in the catalog. Price and Duration are
// free text; numeric comparisons go through catalog.ExtractNumber.
type Tour struct {
	ID            int64          `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Duration      string         `db:"duration" json:"duration"`
	TourType      string         `db:"tour_type" json:"tourType"`
	Season        string         `db:"season" json:"season"`
	Description   string         `db:"description" json:"description"`
	Image         string         `db:"image" json:"image"`
	Price         string         `db:"price" json:"price"`
	Highlights    []string       `db:"highlights" json:"highlights"`
	Itinerary     []ItineraryDay `db:"itinerary" json:"itinerary"`
	PackingList   []string       `db:"packing_list" json:"packingList"`
	PracticalInfo PracticalInfo  `db:"practical_info" json:"practicalInfo"`
	Locations     []MapLocation  `db:"locations" json:"locations,omitempty"`
	Timestamps
}

type ItineraryDay struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type PracticalInfo struct {
	Accommodation string   `json:"accommodation"`
	Meals         string   `json:"meals"`
	Difficulty    string   `json:"difficulty"`
	GroupSize     string   `json:"groupSize"`
	Included      []string `json:"included"`
	NotIncluded   []string `json:"notIncluded"`
}

type MapLocation struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// ItineraryContiguous reports whether day numbers run 1..n in order
func (t Tour) ItineraryContiguous() bool {
	for i, day := range t.Itinerary {
		if day.Day != i+1 {
			return false
		}
	}
	return true
}
