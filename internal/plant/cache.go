// AngelaMos | 2026
// cache.go

package plant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheTTL = 5 * time.Minute

	plantKeyPrefix = "plant:"
	listRevKey     = "plants:rev"
)

// Cache is a read-through cache over the plant catalog. List results are
// keyed by a generation counter that mutations bump, so stale lists expire
// without scanning for their keys.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

func (c *Cache) GetPlant(ctx context.Context, id string) (*Plant, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, plantKeyPrefix+id).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("plant cache read failed", "error", err)
		}
		return nil, false
	}

	var plant Plant
	if err := json.Unmarshal(data, &plant); err != nil {
		return nil, false
	}

	return &plant, true
}

func (c *Cache) SetPlant(ctx context.Context, plant *Plant) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(plant)
	if err != nil {
		return
	}

	if err := c.client.Set(
		ctx, plantKeyPrefix+plant.ID, data, cacheTTL,
	).Err(); err != nil {
		c.logger.Warn("plant cache write failed", "error", err)
	}
}

func (c *Cache) GetList(
	ctx context.Context,
	params ListPlantsParams,
) ([]Plant, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	key, err := c.listKey(ctx, params)
	if err != nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("plant list cache read failed", "error", err)
		}
		return nil, false
	}

	var plants []Plant
	if err := json.Unmarshal(data, &plants); err != nil {
		return nil, false
	}

	return plants, true
}

func (c *Cache) SetList(
	ctx context.Context,
	params ListPlantsParams,
	plants []Plant,
) {
	if c == nil || c.client == nil {
		return
	}

	key, err := c.listKey(ctx, params)
	if err != nil {
		return
	}

	data, err := json.Marshal(plants)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		c.logger.Warn("plant list cache write failed", "error", err)
	}
}

// Invalidate drops the per-plant entry and bumps the list generation so
// every cached list result becomes unreachable.
func (c *Cache) Invalidate(ctx context.Context, id string) {
	if c == nil || c.client == nil {
		return
	}

	pipe := c.client.Pipeline()
	pipe.Del(ctx, plantKeyPrefix+id)
	pipe.Incr(ctx, listRevKey)
	if _, err := pipe.Exec(ctx); err != nil {
		c.logger.Warn("plant cache invalidation failed", "error", err)
	}
}

func (c *Cache) listKey(
	ctx context.Context,
	params ListPlantsParams,
) (string, error) {
	rev, err := c.client.Get(ctx, listRevKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return "", err
	}

	return fmt.Sprintf(
		"plants:%d:name=%s:categories=%s",
		rev, params.Name, params.Categories,
	), nil
}
