package itinerary

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"wayplan/models"

	"github.com/go-redis/redis/v8"
)

const planCachePrefix = "plan:"

// PlanCache memoizes finished documents keyed by a filter signature, so
// repeated identical requests skip the collaborator round trips. A nil
// cache is valid and disables memoization.
type PlanCache interface {
	Get(ctx context.Context, signature string) (*models.ItineraryDocument, error)
	Set(ctx context.Context, signature string, doc *models.ItineraryDocument) error
}

// FilterSignature derives a deterministic cache key from the request.
// Interests are sorted because their order is irrelevant to the result.
func FilterSignature(params models.FilterParams) string {
	interests := make([]string, len(params.Interests))
	for i, tag := range params.Interests {
		interests[i] = strings.ToLower(strings.TrimSpace(tag))
	}
	sort.Strings(interests)
	return fmt.Sprintf("%s|%s|%s|%s|%d",
		strings.ToLower(strings.TrimSpace(params.City)),
		models.NormalizeAudience(params.Audience),
		strings.Join(interests, ","),
		params.Date,
		params.Budget,
	)
}

// RedisPlanCache is the Redis-backed PlanCache.
type RedisPlanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPlanCache(client *redis.Client, ttl time.Duration) *RedisPlanCache {
	return &RedisPlanCache{client: client, ttl: ttl}
}

func (c *RedisPlanCache) Get(ctx context.Context, signature string) (*models.ItineraryDocument, error) {
	data, err := c.client.Get(ctx, planCachePrefix+signature).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var doc models.ItineraryDocument
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *RedisPlanCache) Set(ctx context.Context, signature string, doc *models.ItineraryDocument) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, planCachePrefix+signature, b, c.ttl).Err()
}
