package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wayplan/models"

	"go.uber.org/zap"
)

const textSearchURL = "https://maps.googleapis.com/maps/api/place/textsearch/json"

// googlePlace mirrors one result entry of the Places text search response.
type googlePlace struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Types            []string `json:"types"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
}

type textSearchResponse struct {
	Results []googlePlace `json:"results"`
	Status  string        `json:"status"`
}

// GooglePlaceSearch queries the Google Places text search API, one query per
// target category, and merges the results by place id.
type GooglePlaceSearch struct {
	APIKey string
	Logger *zap.Logger

	// HTTPClient is overridable for tests; nil means a 5s-timeout default.
	HTTPClient *http.Client
}

func NewGooglePlaceSearch(apiKey string, logger *zap.Logger) *GooglePlaceSearch {
	return &GooglePlaceSearch{
		APIKey:     apiKey,
		Logger:     logger,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (g *GooglePlaceSearch) client() *http.Client {
	if g.HTTPClient != nil {
		return g.HTTPClient
	}
	return &http.Client{Timeout: 5 * time.Second}
}

// Search fetches candidates for each category and returns a deduplicated,
// normalized pool. The first interest tag is folded into the query to bias
// results without changing the category targeting.
func (g *GooglePlaceSearch) Search(ctx context.Context, city string, categories []models.Category, interests []string) ([]models.Place, error) {
	if g.APIKey == "" {
		return nil, fmt.Errorf("google places: missing API key")
	}

	seen := make(map[string]bool)
	var pool []models.Place
	for _, cat := range categories {
		results, err := g.searchCategory(ctx, city, cat, interests)
		if err != nil {
			return nil, err
		}
		for _, raw := range results {
			if raw.PlaceID == "" || seen[raw.PlaceID] {
				continue
			}
			seen[raw.PlaceID] = true
			pool = append(pool, normalizePlace(raw, cat))
		}
	}
	return pool, nil
}

func (g *GooglePlaceSearch) searchCategory(ctx context.Context, city string, category models.Category, interests []string) ([]googlePlace, error) {
	query := fmt.Sprintf("%s in %s", category, city)
	if len(interests) > 0 {
		query = fmt.Sprintf("%s %s in %s", interests[0], category, city)
	}

	reqURL := fmt.Sprintf("%s?query=%s&key=%s", textSearchURL, url.QueryEscape(query), g.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("google places: request failed: %w", err)
	}
	defer resp.Body.Close()

	var parsed textSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("google places: decode failed: %w", err)
	}
	if parsed.Status != "OK" && parsed.Status != "ZERO_RESULTS" {
		if g.Logger != nil {
			g.Logger.Warn("google places: non-ok status", zap.String("status", parsed.Status))
		}
		return nil, fmt.Errorf("google places: status %s", parsed.Status)
	}
	return parsed.Results, nil
}
