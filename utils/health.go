package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Sheets    bool      `json:"sheets"`
	Redis     bool      `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. sheetsProbe should issue a cheap read against the spreadsheet.
func StartHealthMonitor(redisClient *redis.Client, sheetsProbe func(ctx context.Context) error) {
	go func() {
		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()

		for range ticker.C {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)

			redisHealthy := redisClient.Ping(ctx).Err() == nil
			sheetsHealthy := sheetsProbe(ctx) == nil

			mu.Lock()
			currentHealth = HealthStatus{
				Sheets:    sheetsHealthy,
				Redis:     redisHealthy,
				CheckedAt: time.Now(),
			}
			mu.Unlock()

			cancel()
		}
	}()
}
