package itinerary

import (
	"context"
	"testing"
	"time"

	"wayplan/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterSignatureDeterministic(t *testing.T) {
	params := models.FilterParams{
		City:      "Barcelona",
		Audience:  "couple",
		Interests: []string{"romantic", "food"},
		Date:      "2025-09-19",
		Budget:    150,
	}
	assert.Equal(t, FilterSignature(params), FilterSignature(params))
}

func TestFilterSignatureIgnoresInterestOrderAndCase(t *testing.T) {
	a := models.FilterParams{City: "Barcelona", Audience: "couple", Interests: []string{"Romantic", "food"}, Date: "2025-09-19", Budget: 150}
	b := models.FilterParams{City: "barcelona", Audience: "couple", Interests: []string{"food", "romantic"}, Date: "2025-09-19", Budget: 150}
	assert.Equal(t, FilterSignature(a), FilterSignature(b))
}

func TestFilterSignatureSplitsOnBudget(t *testing.T) {
	a := models.FilterParams{City: "Rome", Audience: "adult", Date: "2025-09-19", Budget: 100}
	b := a
	b.Budget = 150
	assert.NotEqual(t, FilterSignature(a), FilterSignature(b))
}

func TestFilterSignatureNormalizesAudience(t *testing.T) {
	a := models.FilterParams{City: "Rome", Audience: "spacecrew", Date: "2025-09-19", Budget: 100}
	b := a
	b.Audience = "adult"
	assert.Equal(t, FilterSignature(a), FilterSignature(b))
}

func newMiniredisCache(t *testing.T, ttl time.Duration) (*RedisPlanCache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisPlanCache(client, ttl), mr
}

func TestRedisPlanCacheRoundTrip(t *testing.T) {
	cache, _ := newMiniredisCache(t, 0)
	ctx := context.Background()

	doc := &models.ItineraryDocument{
		ID:   "doc-1",
		City: "Barcelona",
		Items: []models.ItineraryItem{
			{Time: "08:30", Label: "Morning Coffee", Title: "Cafè de l'Òpera", EstimatedCost: 10},
		},
		Budget: models.BudgetState{TotalCost: 10, Target: 150},
	}
	require.NoError(t, cache.Set(ctx, "sig-1", doc))

	got, err := cache.Get(ctx, "sig-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, doc.ID, got.ID)
	assert.Equal(t, doc.Items, got.Items)
	assert.Equal(t, doc.Budget, got.Budget)
}

func TestRedisPlanCacheMissReturnsNil(t *testing.T) {
	cache, _ := newMiniredisCache(t, 0)

	got, err := cache.Get(context.Background(), "never-written")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisPlanCacheEntriesExpire(t *testing.T) {
	cache, mr := newMiniredisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "sig-ttl", &models.ItineraryDocument{ID: "doc-ttl"}))
	mr.FastForward(2 * time.Minute)

	got, err := cache.Get(ctx, "sig-ttl")
	require.NoError(t, err)
	assert.Nil(t, got)
}
