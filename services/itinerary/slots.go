package itinerary

import (
	"sort"
	"strings"

	"wayplan/models"
)

// mandatorySlots are inserted into every plan regardless of interests.
var mandatorySlots = []models.TimeSlot{
	{Time: "08:30", Category: models.CategoryCafe, Label: "Morning Coffee"},
	{Time: "13:00", Category: models.CategoryRestaurant, Label: "Lunch"},
	{Time: "19:30", Category: models.CategoryRestaurant, Label: "Dinner"},
}

// interestSlots maps an interest tag to the activity slots it contributes.
var interestSlots = map[string][]models.TimeSlot{
	"romantic": {
		{Time: "10:30", Category: models.CategoryPark, Label: "Romantic Walk"},
		{Time: "16:00", Category: models.CategoryAttraction, Label: "Scenic Views"},
		{Time: "21:30", Category: models.CategoryBar, Label: "Evening Drinks"},
	},
	"culture": {
		{Time: "10:00", Category: models.CategoryMuseum, Label: "Museum Visit"},
		{Time: "15:30", Category: models.CategoryAttraction, Label: "City Landmarks"},
	},
	"art": {
		{Time: "10:00", Category: models.CategoryMuseum, Label: "Gallery Morning"},
		{Time: "16:30", Category: models.CategoryAttraction, Label: "Street Art Walk"},
	},
	"history": {
		{Time: "10:00", Category: models.CategoryMuseum, Label: "History Museum"},
		{Time: "15:00", Category: models.CategoryAttraction, Label: "Old Town Walk"},
	},
	"nature": {
		{Time: "10:30", Category: models.CategoryPark, Label: "Green Escape"},
		{Time: "16:00", Category: models.CategoryPark, Label: "Afternoon in the Park"},
	},
	"shopping": {
		{Time: "11:00", Category: models.CategoryShopping, Label: "Shopping Stroll"},
		{Time: "17:00", Category: models.CategoryShopping, Label: "Boutique Browsing"},
	},
	"nightlife": {
		{Time: "21:30", Category: models.CategoryBar, Label: "Night Out"},
		{Time: "23:00", Category: models.CategoryBar, Label: "Late Drinks"},
	},
	"food": {
		{Time: "11:00", Category: models.CategoryCafe, Label: "Local Tastings"},
		{Time: "17:30", Category: models.CategoryRestaurant, Label: "Food Market"},
	},
	"adventure": {
		{Time: "10:00", Category: models.CategoryAttraction, Label: "City Adventure"},
		{Time: "15:30", Category: models.CategoryPark, Label: "Outdoor Break"},
	},
}

// defaultSlots substitutes interest-driven slots when the interest list is
// empty or matches nothing in the table.
var defaultSlots = map[models.Audience][]models.TimeSlot{
	models.AudienceKids: {
		{Time: "10:30", Category: models.CategoryPark, Label: "Playtime in the Park"},
		{Time: "15:30", Category: models.CategoryAttraction, Label: "Family Fun"},
	},
	models.AudienceCouple: {
		{Time: "10:30", Category: models.CategoryPark, Label: "Morning Walk"},
		{Time: "16:00", Category: models.CategoryAttraction, Label: "Sightseeing"},
		{Time: "21:30", Category: models.CategoryBar, Label: "Evening Drinks"},
	},
	models.AudienceAdult: {
		{Time: "10:30", Category: models.CategoryAttraction, Label: "City Highlights"},
		{Time: "16:00", Category: models.CategoryPark, Label: "Afternoon Break"},
	},
}

// kidsDisallowed lists categories never scheduled for a kids audience.
var kidsDisallowed = map[models.Category]bool{
	models.CategoryBar: true,
}

// BuildSlots produces the ordered slot list for one day: the mandatory meal
// slots merged with interest-driven activity slots, filtered for the
// audience, sorted by time and deduplicated by exact time (first wins).
// Deterministic and side-effect free.
func BuildSlots(audience models.Audience, interests []string) []models.TimeSlot {
	var extra []models.TimeSlot
	for _, interest := range interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		for _, s := range interestSlots[key] {
			if audience == models.AudienceKids && kidsDisallowed[s.Category] {
				continue
			}
			extra = append(extra, s)
		}
	}
	if len(extra) == 0 {
		defaults, ok := defaultSlots[audience]
		if !ok {
			defaults = defaultSlots[models.AudienceAdult]
		}
		extra = defaults
	}

	// Mandatory first so meal slots win time collisions.
	slots := make([]models.TimeSlot, 0, len(mandatorySlots)+len(extra))
	slots = append(slots, mandatorySlots...)
	slots = append(slots, extra...)

	// HH:MM strings compare correctly lexicographically; SliceStable keeps
	// concatenation order among equal times.
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].Time < slots[j].Time
	})

	deduped := slots[:0]
	seen := make(map[string]bool, len(slots))
	for _, s := range slots {
		if seen[s.Time] {
			continue
		}
		seen[s.Time] = true
		deduped = append(deduped, s)
	}
	return deduped
}
