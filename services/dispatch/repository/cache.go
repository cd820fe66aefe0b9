package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/fleetyard/dispatch/internal/pkg/constants"
	"github.com/fleetyard/dispatch/internal/pkg/database"
	"github.com/fleetyard/dispatch/internal/pkg/models"
)

// ViewCache caches assembled dispatch detail views in Redis. The TTL is
// short; a cache entry is also invalidated on every status transition.
type ViewCache struct {
	cfg   *models.Config
	redis *database.RedisClient
}

// NewViewCache creates a new dispatch view cache
func NewViewCache(cfg *models.Config, redisClient *database.RedisClient) *ViewCache {
	return &ViewCache{
		cfg:   cfg,
		redis: redisClient,
	}
}

// GetView retrieves a cached view. A miss returns (nil, nil).
func (c *ViewCache) GetView(ctx context.Context, dispatchID string) (*models.DispatchWithDetails, error) {
	data, err := c.redis.Get(ctx, constants.DispatchViewKey(dispatchID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached dispatch view: %w", err)
	}

	var view models.DispatchWithDetails
	if err := json.Unmarshal([]byte(data), &view); err != nil {
		// A corrupt entry is treated as a miss; the next SetView
		// overwrites it.
		return nil, nil
	}

	return &view, nil
}

// SetView stores an assembled view with the configured TTL
func (c *ViewCache) SetView(ctx context.Context, view *models.DispatchWithDetails) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal dispatch view: %w", err)
	}

	ttl := time.Duration(c.cfg.Dispatch.ViewCacheTTLSeconds) * time.Second
	key := constants.DispatchViewKey(view.Dispatch.DispatchID.String())
	if err := c.redis.Set(ctx, key, data, ttl); err != nil {
		return fmt.Errorf("failed to cache dispatch view: %w", err)
	}

	return nil
}

// InvalidateView drops the cached view for a dispatch
func (c *ViewCache) InvalidateView(ctx context.Context, dispatchID string) error {
	if err := c.redis.Delete(ctx, constants.DispatchViewKey(dispatchID)); err != nil {
		return fmt.Errorf("failed to invalidate dispatch view: %w", err)
	}
	return nil
}
