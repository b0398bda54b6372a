package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard:authority"

// DashboardCache keeps a short-lived copy of the authority dashboard view in
// Redis so a busy dashboard poll does not hammer the stores. A nil cache is
// valid and means caching is disabled.
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache connects to Redis and verifies the connection.
func NewDashboardCache(redisURL string, ttl time.Duration) (*DashboardCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &DashboardCache{client: client, ttl: ttl}, nil
}

// Get returns the cached view, or nil on a miss. Cache errors degrade to a
// miss so the dashboard never fails because of the cache.
func (dc *DashboardCache) Get(ctx context.Context) *model.DashboardView {
	if dc == nil || dc.client == nil {
		return nil
	}

	data, err := dc.client.Get(ctx, dashboardCacheKey).Bytes()
	if err == redis.Nil {
		return nil // Cache miss
	}
	if err != nil {
		return nil
	}

	var view model.DashboardView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}

	return &view
}

// Set stores the view under the configured TTL. Best effort.
func (dc *DashboardCache) Set(ctx context.Context, view *model.DashboardView) error {
	if dc == nil || dc.client == nil || view == nil {
		return nil
	}

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard view: %v", err)
	}

	if err := dc.client.Set(ctx, dashboardCacheKey, data, dc.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache dashboard view: %v", err)
	}

	return nil
}

func (dc *DashboardCache) IsConnected() bool {
	if dc == nil || dc.client == nil {
		return false
	}
	return dc.client.Ping(context.Background()).Err() == nil
}

// Close closes the Redis connection.
func (dc *DashboardCache) Close() error {
	if dc == nil || dc.client == nil {
		return nil
	}
	return dc.client.Close()
}
