package utils

import (
	"context"
	"sync"
	"time"

	"yourclean/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus reports the dependencies this service runs on: MongoDB for
// configuration and orders, the Redis cache DB for pricing snapshots and the
// Redis queue DB backing the notification worker.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Cache     bool      `json:"cache"`
	Queue     bool      `json:"queue"`
	CheckedAt time.Time `json:"checked_at"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// StartHealthMonitor checks the backing services every minute and updates
// the in-memory snapshot served by the health endpoint. The queue DB gets
// its own client because asynq owns its connections internally.
func StartHealthMonitor(cache *redis.Client, mongoClient *mongo.Client) {
	queue := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		ctx := context.Background()
		for range ticker.C {
			status := HealthStatus{
				Mongo:     mongoClient.Ping(ctx, nil) == nil,
				Cache:     cache.Ping(ctx).Err() == nil,
				Queue:     queue.Ping(ctx).Err() == nil,
				CheckedAt: time.Now(),
			}

			healthMu.Lock()
			currentHealth = status
			healthMu.Unlock()
		}
	}()
}
