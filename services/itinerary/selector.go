package itinerary

import "wayplan/models"

// fallbackChains lists the substitute categories tried, in order, when a
// slot's primary category has no unused candidate left.
var fallbackChains = map[models.Category][]models.Category{
	models.CategoryCafe:       {models.CategoryRestaurant, models.CategoryAttraction},
	models.CategoryRestaurant: {models.CategoryCafe, models.CategoryAttraction},
	models.CategoryMuseum:     {models.CategoryAttraction, models.CategoryPark, models.CategoryCafe},
	models.CategoryAttraction: {models.CategoryMuseum, models.CategoryPark},
	models.CategoryPark:       {models.CategoryAttraction, models.CategoryMuseum},
	models.CategoryBar:        {models.CategoryRestaurant, models.CategoryCafe},
	models.CategoryShopping:   {models.CategoryAttraction, models.CategoryCafe},
	models.CategoryOther:      {models.CategoryAttraction},
}

// freeTimeItem is the zero-cost filler used when no candidate can fill a slot.
func freeTimeItem() models.SelectedItem {
	return models.SelectedItem{
		Title:         "Free Time",
		Category:      models.CategoryOther,
		EstimatedCost: 0,
		Placeholder:   true,
	}
}

// UsedPlaceSet tracks place ids already assigned in the current build. It
// grows monotonically and is scoped to one itinerary; a place id never
// appears twice in a plan, even across fallback categories.
type UsedPlaceSet map[string]bool

// score ranks a candidate for selection. Missing fields are zero-valued and
// simply contribute nothing.
func score(p models.Place) float64 {
	s := p.Rating*10 + float64(p.ReviewCount)/100
	if p.OpenNow {
		s += 5
	}
	return s
}

// SelectForSlot picks the best unused candidate for the slot. The pool is
// filtered by the slot's category first, then by each entry of the
// category's fallback chain; ties resolve to the first-seen candidate. When
// every category is exhausted the Free Time placeholder is returned and
// nothing is marked used. Never errors: no match is a handled outcome.
func SelectForSlot(slot models.TimeSlot, pool []models.Place, used UsedPlaceSet) models.SelectedItem {
	categories := append([]models.Category{slot.Category}, fallbackChains[slot.Category]...)
	for _, cat := range categories {
		best := -1
		bestScore := 0.0
		for i, p := range pool {
			if p.Category != cat || used[p.ID] {
				continue
			}
			if s := score(p); best == -1 || s > bestScore {
				best = i
				bestScore = s
			}
		}
		if best == -1 {
			continue
		}
		p := pool[best]
		used[p.ID] = true
		return models.SelectedItem{
			Title:         p.Name,
			Category:      p.Category,
			Address:       p.Address,
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
			EstimatedCost: p.EstimatedCost(),
			PlaceID:       p.ID,
			Coordinates:   p.Coordinates,
		}
	}
	return freeTimeItem()
}
