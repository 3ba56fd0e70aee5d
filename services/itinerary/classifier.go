package itinerary

import (
	"strings"

	"wayplan/models"
)

// categoryRule pairs an internal category with the source keywords that map to it.
type categoryRule struct {
	category models.Category
	keywords []string
}

// categoryRules is checked in order; the first rule whose keyword set
// intersects the raw tags wins. Food categories come first so that a place
// tagged both "cafe" and "point_of_interest" lands on cafe.
var categoryRules = []categoryRule{
	{models.CategoryCafe, []string{"cafe", "coffee", "coffee_shop", "bakery", "brunch", "tea_house"}},
	{models.CategoryRestaurant, []string{"restaurant", "food", "meal_takeaway", "meal_delivery", "dining", "bistro", "tapas"}},
	{models.CategoryBar, []string{"bar", "night_club", "nightclub", "pub", "wine_bar", "cocktail", "rooftop"}},
	{models.CategoryMuseum, []string{"museum", "art_gallery", "gallery", "exhibition", "history"}},
	{models.CategoryPark, []string{"park", "garden", "beach", "nature", "hiking", "viewpoint", "scenic"}},
	{models.CategoryShopping, []string{"shopping_mall", "shopping", "store", "market", "boutique", "department_store"}},
	{models.CategoryAttraction, []string{"tourist_attraction", "attraction", "landmark", "monument", "point_of_interest", "church", "castle", "plaza", "aquarium", "zoo", "amusement_park"}},
}

// Classify reduces a set of free-text source tags to exactly one internal
// category. When no keyword matches, a valid fallback hint is used, and
// failing that the permissive "other" default. It never errors: unmatched
// input is expected, not exceptional.
func Classify(rawTags []string, fallbackHint string) models.Category {
	for _, rule := range categoryRules {
		for _, tag := range rawTags {
			t := strings.ToLower(strings.TrimSpace(tag))
			for _, kw := range rule.keywords {
				if t == kw {
					return rule.category
				}
			}
		}
	}
	if models.ValidCategory(fallbackHint) {
		return models.Category(fallbackHint)
	}
	return models.CategoryOther
}

// ClassifyPool assigns a category to every place in the pool, using each
// place's existing category value as the fallback hint.
func ClassifyPool(pool []models.Place) []models.Place {
	out := make([]models.Place, len(pool))
	for i, p := range pool {
		p.Category = Classify(p.RawTags, string(p.Category))
		out[i] = p
	}
	return out
}
