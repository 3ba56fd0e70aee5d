package textgen

import (
	"fmt"

	"wayplan/models"
)

// Deterministic templated fallbacks, built from the same input fields the
// generator would use. Substituted whenever a generation call fails so no
// document field is ever left blank.

func FallbackTitle(params models.FilterParams) string {
	return fmt.Sprintf("A Day in %s", params.City)
}

func FallbackSubtitle(params models.FilterParams) string {
	return fmt.Sprintf("A hand-picked %s itinerary for %s, planned around %s.",
		params.City, audiencePhrase(params), interestPhrase(params))
}

func FallbackWeather(params models.FilterParams) models.WeatherBlurb {
	return models.WeatherBlurb{
		Forecast: fmt.Sprintf("Check the local forecast for %s on %s before heading out.", params.City, params.Date),
		Clothing: "Comfortable walking shoes and a light layer are a safe bet.",
		Tips:     "Mornings tend to be quieter at popular spots.",
	}
}

func FallbackDescription(params models.FilterParams, item models.SelectedItem) string {
	if item.Placeholder {
		return fmt.Sprintf("Some unplanned time to wander %s at your own pace.", params.City)
	}
	return fmt.Sprintf("%s is a well-rated %s stop on your day through %s.",
		item.Title, item.Category, params.City)
}

func FallbackTips(params models.FilterParams, item models.SelectedItem) string {
	if item.Placeholder {
		return "Follow whatever catches your eye nearby."
	}
	return fmt.Sprintf("Arriving early at %s usually means shorter queues.", item.Title)
}
