package models

// Audience identifies who the itinerary is planned for.
type Audience string

const (
	AudienceHim    Audience = "him"
	AudienceHer    Audience = "her"
	AudienceCouple Audience = "couple"
	AudienceKids   Audience = "kids"
	AudienceAdult  Audience = "adult" // generic default for unrecognized values
)

// NormalizeAudience maps an arbitrary string onto a known audience.
// Unrecognized values fall back to the generic adult default.
func NormalizeAudience(s string) Audience {
	switch Audience(s) {
	case AudienceHim, AudienceHer, AudienceCouple, AudienceKids:
		return Audience(s)
	}
	return AudienceAdult
}

// FilterParams is the user request for one itinerary build.
// Immutable for the duration of the build.
type FilterParams struct {
	City      string   `json:"city"`      // Required, non-empty
	Audience  string   `json:"audience"`  // him|her|couple|kids; anything else is treated as generic adult
	Interests []string `json:"interests"` // Free-text interest tags, order preserved, may be empty
	Date      string   `json:"date"`      // "YYYY-MM-DD"
	Budget    int      `json:"budget"`    // Non-negative, currency units; invalid values get the configured default
}
