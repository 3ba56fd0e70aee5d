package textgen

import (
	"context"

	"wayplan/models"
)

// TextGenerator produces the natural-language pieces of a plan. Every method
// may fail (network, quota); callers are expected to treat failure as an
// ordinary branch and substitute the deterministic fallbacks from this
// package rather than abort the build.
type TextGenerator interface {
	GenerateTitle(ctx context.Context, params models.FilterParams) (string, error)
	GenerateSubtitle(ctx context.Context, params models.FilterParams) (string, error)
	GenerateWeather(ctx context.Context, params models.FilterParams) (models.WeatherBlurb, error)
	GenerateDescription(ctx context.Context, params models.FilterParams, item models.SelectedItem) (string, error)
	GenerateTips(ctx context.Context, params models.FilterParams, item models.SelectedItem) (string, error)
}
