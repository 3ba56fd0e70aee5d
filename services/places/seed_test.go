package places

import (
	"context"
	"testing"

	"wayplan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSearchKnownCity(t *testing.T) {
	search := NewSeededPlaceSearch()

	pool, err := search.Search(context.Background(), "Barcelona", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, pool)

	names := make(map[string]bool)
	for _, p := range pool {
		names[p.Name] = true
	}
	assert.True(t, names["Parc de la Ciutadella"])
}

func TestSeededSearchCityLookupIsCaseInsensitive(t *testing.T) {
	search := NewSeededPlaceSearch()

	lower, err := search.Search(context.Background(), "paris", nil, nil)
	require.NoError(t, err)
	upper, err := search.Search(context.Background(), "  PARIS ", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, lower, upper)
}

func TestSeededSearchUnknownCityGetsGenericPool(t *testing.T) {
	search := NewSeededPlaceSearch()

	pool, err := search.Search(context.Background(), "Ulaanbaatar", nil, nil)
	require.NoError(t, err)
	require.NotEmpty(t, pool)

	// The generic pool covers every mandatory category.
	tags := make(map[string]bool)
	for _, p := range pool {
		for _, tag := range p.RawTags {
			tags[tag] = true
		}
	}
	assert.True(t, tags["cafe"])
	assert.True(t, tags["restaurant"])
}

func TestSeededSearchReturnsCopies(t *testing.T) {
	search := NewSeededPlaceSearch()
	ctx := context.Background()

	first, err := search.Search(ctx, "Rome", nil, nil)
	require.NoError(t, err)
	first[0].Name = "mutated"
	first[0].Category = models.CategoryBar

	second, err := search.Search(ctx, "Rome", nil, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "mutated", second[0].Name)
}
