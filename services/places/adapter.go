package places

import "wayplan/models"

// normalizePlace converts a raw Places API entry into the canonical Place
// shape. The searched category is kept as a classification hint; the build
// re-classifies every place from its raw tags before any core logic runs.
func normalizePlace(raw googlePlace, searched models.Category) models.Place {
	p := models.Place{
		ID:          raw.PlaceID,
		Name:        raw.Name,
		Address:     raw.FormattedAddress,
		Rating:      raw.Rating,
		ReviewCount: raw.UserRatingsTotal,
		PriceLevel:  raw.PriceLevel,
		Category:    searched,
		RawTags:     raw.Types,
	}
	if raw.OpeningHours != nil {
		p.OpenNow = raw.OpeningHours.OpenNow
	}
	if raw.Geometry.Location.Lat != 0 || raw.Geometry.Location.Lng != 0 {
		p.Coordinates = &models.GeoPoint{
			Lat: raw.Geometry.Location.Lat,
			Lng: raw.Geometry.Location.Lng,
		}
	}
	return p
}
