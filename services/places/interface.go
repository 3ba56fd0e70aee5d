package places

import (
	"context"

	"wayplan/models"
)

// PlaceSearch returns candidate places for a city. An empty result is valid;
// the build degrades to placeholders. Implementations normalize their raw
// responses into models.Place before returning.
type PlaceSearch interface {
	Search(ctx context.Context, city string, categories []models.Category, interests []string) ([]models.Place, error)
}
