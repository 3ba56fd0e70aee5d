package models

import "time"

// TimeSlot is a planned point in the day with a target category.
type TimeSlot struct {
	Time     string   `json:"time"`     // "HH:MM", unique within one plan
	Category Category `json:"category"` // Target category for this slot
	Label    string   `json:"label"`    // Human title, e.g. "Morning Coffee"
}

// SelectedItem is the outcome of filling one slot: either a real place or
// the zero-cost "Free Time" placeholder.
type SelectedItem struct {
	Title         string    `json:"title"`
	Category      Category  `json:"category"`
	Address       string    `json:"address,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	EstimatedCost int       `json:"estimatedCost"`
	PlaceID       string    `json:"placeId,omitempty"` // Empty for placeholders
	Placeholder   bool      `json:"placeholder"`
	Coordinates   *GeoPoint `json:"coordinates,omitempty"`
}

// BudgetState is the derived budget annotation for a finished plan.
type BudgetState struct {
	TotalCost    int     `json:"totalCost"`
	Target       int     `json:"target"`
	LowerBound   float64 `json:"lowerBound"`
	UpperBound   float64 `json:"upperBound"`
	WithinBudget bool    `json:"withinBudget"`
	Ratio        float64 `json:"ratio"` // totalCost/target, 1.0 when target is 0
}

// WeatherBlurb is the generated weather section of a plan.
type WeatherBlurb struct {
	Forecast string `json:"forecast"`
	Clothing string `json:"clothing"`
	Tips     string `json:"tips"`
}

// GeneratedText bundles all collaborator-produced natural language for a plan.
type GeneratedText struct {
	Title        string       `json:"title"`
	Subtitle     string       `json:"subtitle"`
	Weather      WeatherBlurb `json:"weather"`
	Descriptions []string     `json:"descriptions"` // Parallel to items
	Tips         []string     `json:"tips"`         // Parallel to items
}

// ItineraryItem is one scheduled entry of the final document.
type ItineraryItem struct {
	Time          string    `json:"time"`
	Label         string    `json:"label"`
	Title         string    `json:"title"`
	Category      Category  `json:"category"`
	Address       string    `json:"address,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	ReviewCount   int       `json:"reviewCount,omitempty"`
	Description   string    `json:"description"`
	Tips          string    `json:"tips,omitempty"`
	EstimatedCost int       `json:"estimatedCost"`
	Placeholder   bool      `json:"placeholder"`
	Coordinates   *GeoPoint `json:"coordinates,omitempty"`
}

// ItineraryDocument is the final day plan returned to the caller.
// Created once per request, never persisted.
type ItineraryDocument struct {
	ID          string          `json:"id"`
	City        string          `json:"city"`
	Date        string          `json:"date"`
	Audience    Audience        `json:"audience"`
	Interests   []string        `json:"interests"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle"`
	Weather     WeatherBlurb    `json:"weather"`
	Items       []ItineraryItem `json:"items"`
	Budget      BudgetState     `json:"budget"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
