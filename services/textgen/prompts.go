package textgen

import (
	"fmt"
	"strings"

	"wayplan/models"
)

func audiencePhrase(params models.FilterParams) string {
	switch models.NormalizeAudience(params.Audience) {
	case models.AudienceCouple:
		return "a couple"
	case models.AudienceKids:
		return "a family with kids"
	case models.AudienceHim:
		return "a man traveling solo"
	case models.AudienceHer:
		return "a woman traveling solo"
	}
	return "an adult traveler"
}

func interestPhrase(params models.FilterParams) string {
	if len(params.Interests) == 0 {
		return "general sightseeing"
	}
	return strings.Join(params.Interests, ", ")
}

func titlePrompt(params models.FilterParams) string {
	return fmt.Sprintf(
		"Write a short, evocative title (max 8 words, no quotes) for a one-day trip to %s planned for %s interested in %s.",
		params.City, audiencePhrase(params), interestPhrase(params),
	)
}

func subtitlePrompt(params models.FilterParams) string {
	return fmt.Sprintf(
		"Write a single enticing sentence (max 20 words, no quotes) teasing a day in %s on %s for %s.",
		params.City, params.Date, audiencePhrase(params),
	)
}

func weatherPrompt(params models.FilterParams) string {
	return fmt.Sprintf(
		`Give a plausible weather outlook for %s on %s as a JSON object with exactly these string fields: "forecast", "clothing", "tips". Respond with only the JSON.`,
		params.City, params.Date,
	)
}

func descriptionPrompt(params models.FilterParams, item models.SelectedItem) string {
	return fmt.Sprintf(
		"In two sentences, describe visiting %s (%s) in %s for %s. Warm, concrete, no quotes.",
		item.Title, item.Category, params.City, audiencePhrase(params),
	)
}

func tipsPrompt(params models.FilterParams, item models.SelectedItem) string {
	return fmt.Sprintf(
		"Give one practical insider tip (one sentence, no quotes) for visiting %s in %s.",
		item.Title, params.City,
	)
}
