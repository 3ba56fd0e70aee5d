package places

import (
	"context"
	"strings"

	"wayplan/models"
)

// seedPools are the static per-city fallback pools used when the live place
// search is unavailable. Ratings and price levels are hand-picked so a
// degraded plan still reads plausibly.
var seedPools = map[string][]models.Place{
	"barcelona": {
		{ID: "seed-bcn-1", Name: "Cafè de l'Òpera", Address: "La Rambla 74", Rating: 4.3, ReviewCount: 8200, PriceLevel: 1, RawTags: []string{"cafe"}, OpenNow: true},
		{ID: "seed-bcn-2", Name: "Can Culleretes", Address: "Carrer d'en Quintana 5", Rating: 4.4, ReviewCount: 6100, PriceLevel: 2, RawTags: []string{"restaurant"}, OpenNow: true},
		{ID: "seed-bcn-3", Name: "El Xampanyet", Address: "Carrer de Montcada 22", Rating: 4.5, ReviewCount: 4700, PriceLevel: 2, RawTags: []string{"restaurant", "tapas"}, OpenNow: true},
		{ID: "seed-bcn-4", Name: "Museu Picasso", Address: "Carrer de Montcada 15", Rating: 4.5, ReviewCount: 31000, PriceLevel: 2, RawTags: []string{"museum"}, OpenNow: true},
		{ID: "seed-bcn-5", Name: "Parc de la Ciutadella", Address: "Passeig de Picasso 21", Rating: 4.6, ReviewCount: 54000, PriceLevel: 0, RawTags: []string{"park"}, OpenNow: true},
		{ID: "seed-bcn-6", Name: "Sagrada Família", Address: "Carrer de Mallorca 401", Rating: 4.7, ReviewCount: 210000, PriceLevel: 3, RawTags: []string{"tourist_attraction", "church"}, OpenNow: true},
		{ID: "seed-bcn-7", Name: "Paradiso", Address: "Carrer de Rera Palau 4", Rating: 4.6, ReviewCount: 12000, PriceLevel: 2, RawTags: []string{"bar", "cocktail"}, OpenNow: true},
	},
	"paris": {
		{ID: "seed-par-1", Name: "Café de Flore", Address: "172 Bd Saint-Germain", Rating: 4.1, ReviewCount: 15000, PriceLevel: 3, RawTags: []string{"cafe"}, OpenNow: true},
		{ID: "seed-par-2", Name: "Le Comptoir du Relais", Address: "9 Carrefour de l'Odéon", Rating: 4.2, ReviewCount: 3800, PriceLevel: 3, RawTags: []string{"restaurant"}, OpenNow: true},
		{ID: "seed-par-3", Name: "Bouillon Chartier", Address: "7 Rue du Faubourg Montmartre", Rating: 4.3, ReviewCount: 42000, PriceLevel: 1, RawTags: []string{"restaurant"}, OpenNow: true},
		{ID: "seed-par-4", Name: "Musée d'Orsay", Address: "Esplanade Valéry Giscard d'Estaing", Rating: 4.7, ReviewCount: 88000, PriceLevel: 2, RawTags: []string{"museum"}, OpenNow: true},
		{ID: "seed-par-5", Name: "Jardin du Luxembourg", Address: "Rue de Médicis", Rating: 4.7, ReviewCount: 110000, PriceLevel: 0, RawTags: []string{"park", "garden"}, OpenNow: true},
		{ID: "seed-par-6", Name: "Tour Eiffel", Address: "Champ de Mars", Rating: 4.7, ReviewCount: 380000, PriceLevel: 3, RawTags: []string{"tourist_attraction", "landmark"}, OpenNow: true},
		{ID: "seed-par-7", Name: "Le Syndicat", Address: "51 Rue du Faubourg Saint-Denis", Rating: 4.5, ReviewCount: 2900, PriceLevel: 2, RawTags: []string{"bar", "cocktail"}, OpenNow: true},
	},
	"rome": {
		{ID: "seed-rom-1", Name: "Sant'Eustachio Il Caffè", Address: "Piazza di Sant'Eustachio 82", Rating: 4.4, ReviewCount: 21000, PriceLevel: 1, RawTags: []string{"cafe", "coffee"}, OpenNow: true},
		{ID: "seed-rom-2", Name: "Trattoria Da Enzo al 29", Address: "Via dei Vascellari 29", Rating: 4.5, ReviewCount: 9800, PriceLevel: 2, RawTags: []string{"restaurant"}, OpenNow: true},
		{ID: "seed-rom-3", Name: "Roscioli", Address: "Via dei Giubbonari 21", Rating: 4.4, ReviewCount: 7600, PriceLevel: 3, RawTags: []string{"restaurant"}, OpenNow: true},
		{ID: "seed-rom-4", Name: "Musei Capitolini", Address: "Piazza del Campidoglio 1", Rating: 4.6, ReviewCount: 27000, PriceLevel: 2, RawTags: []string{"museum"}, OpenNow: true},
		{ID: "seed-rom-5", Name: "Villa Borghese", Address: "Piazzale Napoleone I", Rating: 4.7, ReviewCount: 96000, PriceLevel: 0, RawTags: []string{"park"}, OpenNow: true},
		{ID: "seed-rom-6", Name: "Colosseo", Address: "Piazza del Colosseo 1", Rating: 4.7, ReviewCount: 350000, PriceLevel: 2, RawTags: []string{"tourist_attraction", "monument"}, OpenNow: true},
		{ID: "seed-rom-7", Name: "Jerry Thomas Speakeasy", Address: "Vicolo Cellini 30", Rating: 4.4, ReviewCount: 2100, PriceLevel: 3, RawTags: []string{"bar", "cocktail"}, OpenNow: true},
	},
}

// genericPool covers cities without a dedicated seed table.
var genericPool = []models.Place{
	{ID: "seed-gen-1", Name: "Old Town Coffee House", Rating: 4.2, ReviewCount: 1800, PriceLevel: 1, RawTags: []string{"cafe"}, OpenNow: true},
	{ID: "seed-gen-2", Name: "Market Square Kitchen", Rating: 4.3, ReviewCount: 2600, PriceLevel: 2, RawTags: []string{"restaurant"}, OpenNow: true},
	{ID: "seed-gen-3", Name: "Riverside Bistro", Rating: 4.1, ReviewCount: 1300, PriceLevel: 2, RawTags: []string{"restaurant"}, OpenNow: true},
	{ID: "seed-gen-4", Name: "City History Museum", Rating: 4.4, ReviewCount: 5200, PriceLevel: 1, RawTags: []string{"museum"}, OpenNow: true},
	{ID: "seed-gen-5", Name: "Central Park Gardens", Rating: 4.5, ReviewCount: 8900, PriceLevel: 0, RawTags: []string{"park"}, OpenNow: true},
	{ID: "seed-gen-6", Name: "Cathedral Viewpoint", Rating: 4.5, ReviewCount: 11000, PriceLevel: 1, RawTags: []string{"tourist_attraction"}, OpenNow: true},
	{ID: "seed-gen-7", Name: "The Copper Still", Rating: 4.3, ReviewCount: 950, PriceLevel: 2, RawTags: []string{"bar"}, OpenNow: true},
}

// SeededPlaceSearch serves the static pools. It backs the degraded path when
// the live search fails and doubles as the zero-config local setup.
type SeededPlaceSearch struct{}

func NewSeededPlaceSearch() *SeededPlaceSearch {
	return &SeededPlaceSearch{}
}

// Search returns a copy of the city's seed pool, or the generic pool for
// unknown cities. Categories and interests are ignored; the pool is small
// enough that downstream filtering handles targeting.
func (s *SeededPlaceSearch) Search(_ context.Context, city string, _ []models.Category, _ []string) ([]models.Place, error) {
	pool, ok := seedPools[strings.ToLower(strings.TrimSpace(city))]
	if !ok {
		pool = genericPool
	}
	out := make([]models.Place, len(pool))
	copy(out, pool)
	return out, nil
}
