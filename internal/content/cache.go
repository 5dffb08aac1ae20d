// Mr_Evra | 2025
// cache.go

package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mr-evra/portfolio-api/internal/core"
)

const publicViewKey = "view:public"

// ViewCache holds the assembled public projection between mutations.
// Every successful write invalidates it; admin reads always re-query.
type ViewCache interface {
	GetPublicView(ctx context.Context) (*PublicView, error)
	SetPublicView(ctx context.Context, view *PublicView) error
	Invalidate(ctx context.Context) error
}

type redisViewCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewViewCache(client *redis.Client, ttl time.Duration) ViewCache {
	return &redisViewCache{client: client, ttl: ttl}
}

func (c *redisViewCache) GetPublicView(
	ctx context.Context,
) (*PublicView, error) {
	data, err := c.client.Get(ctx, publicViewKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("public view cache: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("public view cache: %w", err)
	}

	var view PublicView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("decode cached view: %w", err)
	}

	return &view, nil
}

func (c *redisViewCache) SetPublicView(
	ctx context.Context,
	view *PublicView,
) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode public view: %w", err)
	}

	if err := c.client.Set(ctx, publicViewKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache public view: %w", err)
	}

	return nil
}

func (c *redisViewCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, publicViewKey).Err(); err != nil {
		return fmt.Errorf("invalidate public view: %w", err)
	}
	return nil
}
