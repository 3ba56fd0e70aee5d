package models

// Category is the internal classification a candidate place is reduced to.
type Category string

const (
	CategoryCafe       Category = "cafe"
	CategoryRestaurant Category = "restaurant"
	CategoryMuseum     Category = "museum"
	CategoryPark       Category = "park"
	CategoryAttraction Category = "attraction"
	CategoryBar        Category = "bar"
	CategoryShopping   Category = "shopping"
	CategoryOther      Category = "other"
)

// ValidCategory reports whether s is a known category value.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryCafe, CategoryRestaurant, CategoryMuseum, CategoryPark,
		CategoryAttraction, CategoryBar, CategoryShopping, CategoryOther:
		return true
	}
	return false
}

// GeoPoint holds optional place coordinates.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a candidate location, normalized at the collaborator boundary.
// Once fetched it is read-only: the build only filters, scores and copies it.
type Place struct {
	ID          string    `json:"id"`                    // Unique per source (e.g., Google place_id)
	Name        string    `json:"name"`                  // Display name
	Address     string    `json:"address,omitempty"`     // Formatted address
	Rating      float64   `json:"rating"`                // 0.0 - 5.0
	ReviewCount int       `json:"reviewCount"`           // >= 0
	PriceLevel  int       `json:"priceLevel"`            // 0 (free) - 4 (very expensive)
	Category    Category  `json:"category"`              // Internal category, assigned by the classifier
	RawTags     []string  `json:"rawTags,omitempty"`     // Source type strings, classifier input only
	OpenNow     bool      `json:"openNow"`               // Open at fetch time, scoring bonus
	Coordinates *GeoPoint `json:"coordinates,omitempty"` // Optional lat/lng
}

// priceLevelCosts maps a 0-4 price level to an estimated currency amount.
var priceLevelCosts = map[int]int{
	0: 0,
	1: 10,
	2: 25,
	3: 50,
	4: 90,
}

// EstimatedCost returns the estimated currency cost for the place's price level.
// Unknown levels are treated as mid-range.
func (p Place) EstimatedCost() int {
	if cost, ok := priceLevelCosts[p.PriceLevel]; ok {
		return cost
	}
	return priceLevelCosts[2]
}
