package utils

import (
	"context"
	"log"
	"time"

	"wayplan/config"

	"github.com/go-redis/redis/v8"
)

var (
	// PlanCacheClient is the client backing the itinerary memoization cache.
	PlanCacheClient *redis.Client
)

// InitPlanCache initializes the Redis client used for itinerary memoization.
func InitPlanCache() {
	PlanCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := PlanCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Plan Cache): %v", err)
	}
}

// GetPlanCacheClient returns the plan cache client.
func GetPlanCacheClient() *redis.Client {
	if PlanCacheClient == nil {
		InitPlanCache()
	}
	return PlanCacheClient
}
