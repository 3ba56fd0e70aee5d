package itinerary

import (
	"context"

	"wayplan/models"
	"wayplan/services/textgen"

	"go.uber.org/zap"
)

// Per-field wrappers around the text generator. A nil generator or a failed
// call lands on the templated fallback; generation failure is an expected
// branch, not an error the build propagates.

func (s *DefaultItineraryService) titleOrFallback(ctx context.Context, params models.FilterParams) string {
	if s.TextGen != nil {
		if title, err := s.TextGen.GenerateTitle(ctx, params); err == nil && title != "" {
			return title
		} else if err != nil {
			s.logger().Debug("title generation failed", zap.Error(err))
		}
	}
	return textgen.FallbackTitle(params)
}

func (s *DefaultItineraryService) subtitleOrFallback(ctx context.Context, params models.FilterParams) string {
	if s.TextGen != nil {
		if subtitle, err := s.TextGen.GenerateSubtitle(ctx, params); err == nil && subtitle != "" {
			return subtitle
		} else if err != nil {
			s.logger().Debug("subtitle generation failed", zap.Error(err))
		}
	}
	return textgen.FallbackSubtitle(params)
}

func (s *DefaultItineraryService) weatherOrFallback(ctx context.Context, params models.FilterParams) models.WeatherBlurb {
	if s.TextGen != nil {
		if blurb, err := s.TextGen.GenerateWeather(ctx, params); err == nil && blurb.Forecast != "" {
			return blurb
		} else if err != nil {
			s.logger().Debug("weather generation failed", zap.Error(err))
		}
	}
	return textgen.FallbackWeather(params)
}

func (s *DefaultItineraryService) descriptionOrFallback(ctx context.Context, params models.FilterParams, item models.SelectedItem) string {
	if s.TextGen != nil {
		if desc, err := s.TextGen.GenerateDescription(ctx, params, item); err == nil && desc != "" {
			return desc
		}
	}
	return textgen.FallbackDescription(params, item)
}

func (s *DefaultItineraryService) tipsOrFallback(ctx context.Context, params models.FilterParams, item models.SelectedItem) string {
	if s.TextGen != nil {
		if tips, err := s.TextGen.GenerateTips(ctx, params, item); err == nil && tips != "" {
			return tips
		}
	}
	return textgen.FallbackTips(params, item)
}
