package catalog

import "tourism-booking/internal/data/entity"

// Seed is the built-in catalog served when the store is unreachable,
// unconfigured or still empty.
func Seed() []entity.Tour {
	return []entity.Tour{
		{
			ID:          1,
			Title:       "Song-Kul Lake Horse Trek",
			Duration:    "5 days",
			TourType:    "Trekking",
			Season:      "Summer",
			Description: "Ride across alpine pastures to the shores of Song-Kul and sleep in nomad yurts.",
			Image:       "/images/song-kul.jpg",
			Price:       "$650",
			Highlights:  []string{"Yurt stays with herder families", "Horse riding at 3,000 m", "Sunrise over Song-Kul"},
			Itinerary: []entity.ItineraryDay{
				{Day: 1, Title: "Bishkek to Kochkor", Description: "Drive east and meet the horse team."},
				{Day: 2, Title: "Kyzart Pass", Description: "Ride over the pass to the summer pastures."},
				{Day: 3, Title: "Song-Kul shore", Description: "Reach the lake and settle into the yurt camp."},
				{Day: 4, Title: "Lake day", Description: "Free riding, felt-making and a shepherd's dinner."},
				{Day: 5, Title: "Return", Description: "Descend by road to Bishkek."},
			},
			PackingList: []string{"Warm layers", "Riding trousers", "Sunscreen"},
			PracticalInfo: entity.PracticalInfo{
				Accommodation: "Guesthouse and yurt camp",
				Meals:         "Full board",
				Difficulty:    "Moderate",
				GroupSize:     "4-10 participants",
				Included:      []string{"Horses and guide", "Transfers", "Meals"},
				NotIncluded:   []string{"Flights", "Travel insurance"},
			},
			Locations: []entity.MapLocation{{Name: "Song-Kul", Lat: 41.83, Lng: 75.12}},
		},
		{
			ID:          2,
			Title:       "Ala-Archa Alpine Trek",
			Duration:    "3 days",
			TourType:    "Trekking",
			Season:      "Summer",
			Description: "Glacier views and a night at the Ratsek hut inside Ala-Archa national park.",
			Image:       "/images/ala-archa.jpg",
			Price:       "$420",
			Highlights:  []string{"Ak-Sai glacier", "Ratsek mountain hut"},
			Itinerary: []entity.ItineraryDay{
				{Day: 1, Title: "Park entrance to Ratsek", Description: "Steady climb along the Adygene valley."},
				{Day: 2, Title: "Glacier day", Description: "Walk up to the Ak-Sai glacier viewpoint."},
				{Day: 3, Title: "Descent", Description: "Return to the park entrance and Bishkek."},
			},
			PackingList: []string{"Trekking boots", "Sleeping bag", "Headlamp"},
			PracticalInfo: entity.PracticalInfo{
				Accommodation: "Mountain hut",
				Meals:         "Breakfast and dinner",
				Difficulty:    "Challenging",
				GroupSize:     "2-8 participants",
				Included:      []string{"Guide", "Park fees"},
				NotIncluded:   []string{"Lunch"},
			},
		},
		{
			ID:          3,
			Title:       "Issyk-Kul Culture Loop",
			Duration:    "7 days",
			TourType:    "Cultural",
			Season:      "Autumn",
			Description: "Petroglyphs, eagle hunters and the red canyons around Lake Issyk-Kul.",
			Image:       "/images/issyk-kul.jpg",
			Price:       "$1,150",
			Highlights:  []string{"Eagle hunting demonstration", "Jeti-Oguz canyon", "Cholpon-Ata petroglyphs"},
			Itinerary: []entity.ItineraryDay{
				{Day: 1, Title: "Bishkek to Cholpon-Ata", Description: "North shore drive and petroglyph field."},
				{Day: 2, Title: "Karakol", Description: "Dungan mosque and Holy Trinity cathedral."},
				{Day: 3, Title: "Jeti-Oguz", Description: "Seven Bulls rocks and valley walk."},
				{Day: 4, Title: "Bokonbaevo", Description: "Eagle hunters and yurt workshop."},
				{Day: 5, Title: "Skazka canyon", Description: "Fairy-tale canyon and beach afternoon."},
				{Day: 6, Title: "Kochkor", Description: "Shyrdak felt carpets cooperative."},
				{Day: 7, Title: "Return", Description: "Drive back to Bishkek."},
			},
			PackingList: []string{"Swimwear", "Comfortable shoes"},
			PracticalInfo: entity.PracticalInfo{
				Accommodation: "Guesthouses",
				Meals:         "Breakfast",
				Difficulty:    "Easy",
				GroupSize:     "4-12 participants",
				Included:      []string{"Driver-guide", "Entrance fees"},
				NotIncluded:   []string{"Lunches and dinners"},
			},
		},
		{
			ID:          4,
			Title:       "Karakol Ski Week",
			Duration:    "6 days",
			TourType:    "Adventure",
			Season:      "Winter",
			Description: "Powder days at the Karakol ski base with hot springs in Altyn-Arashan.",
			Image:       "/images/karakol-ski.jpg",
			Price:       "$980",
			Highlights:  []string{"Karakol ski base", "Altyn-Arashan hot springs"},
			Itinerary: []entity.ItineraryDay{
				{Day: 1, Title: "Arrival", Description: "Transfer to Karakol."},
				{Day: 2, Title: "Ski day", Description: "Lift pass and instructor."},
				{Day: 3, Title: "Ski day", Description: "Off-piste with a guide."},
				{Day: 4, Title: "Altyn-Arashan", Description: "Snow trek to the hot springs."},
				{Day: 5, Title: "Ski day", Description: "Free skiing."},
				{Day: 6, Title: "Return", Description: "Transfer to Bishkek."},
			},
			PackingList: []string{"Ski gear", "Thermal layers"},
			PracticalInfo: entity.PracticalInfo{
				Accommodation: "Hotel",
				Meals:         "Half board",
				Difficulty:    "Moderate",
				GroupSize:     "2-6 participants",
				Included:      []string{"Lift passes", "Transfers"},
				NotIncluded:   []string{"Equipment rental"},
			},
		},
	}
}
