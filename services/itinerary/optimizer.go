package itinerary

import (
	"sort"

	"wayplan/models"
)

// categoryPriority ranks how strongly a category must survive the budget
// trim. Priorities of 3 and above are "essential" (meals), the rest are
// discretionary.
var categoryPriority = map[models.Category]int{
	models.CategoryRestaurant: 5,
	models.CategoryCafe:       4,
	models.CategoryAttraction: 2,
	models.CategoryMuseum:     2,
	models.CategoryShopping:   2,
	models.CategoryPark:       1,
	models.CategoryBar:        1,
	models.CategoryOther:      1,
}

const essentialPriority = 3

// OptimizeBudget trims and reorders the candidate pool so total plan cost
// trends toward the budget tolerance band. Essential places are accepted up
// to target*(1+tolerance); discretionary places only while running cost
// stays at or under the plain target, biasing the mix toward at-or-under
// budget. Rejected places are simply excluded; the input slice is not
// modified. An empty result is valid and degrades downstream to Free Time
// placeholders.
func OptimizeBudget(pool []models.Place, targetBudget int, tolerance float64) []models.Place {
	ordered := make([]models.Place, len(pool))
	copy(ordered, pool)
	sort.SliceStable(ordered, func(i, j int) bool {
		pi := categoryPriority[ordered[i].Category]
		pj := categoryPriority[ordered[j].Category]
		if pi != pj {
			return pi > pj
		}
		return ordered[i].EstimatedCost() < ordered[j].EstimatedCost()
	})

	upperBound := float64(targetBudget) * (1 + tolerance)
	running := 0
	accepted := make([]models.Place, 0, len(ordered))
	for _, p := range ordered {
		cost := p.EstimatedCost()
		if categoryPriority[p.Category] >= essentialPriority {
			if float64(running+cost) <= upperBound {
				accepted = append(accepted, p)
				running += cost
			}
			continue
		}
		if running+cost <= targetBudget {
			accepted = append(accepted, p)
			running += cost
		}
	}
	return accepted
}
