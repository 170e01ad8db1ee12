package cache

import (
	"context"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrCacheMiss = errors.New("cache miss")

const renderedPageTTL = time.Hour

func renderedPageKey(slug, mode string) string {
	return "wiki:rendered:" + slug + ":" + mode
}

// Cache holds rendered wiki pages so repeat views skip link resolution.
// All methods are safe on a nil receiver, which disables caching.
type Cache struct {
	client *redis.Client
}

func NewRedis(addr string) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password set
		DB:       0,  // Use default DB
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Cache{client: client}, nil
}

func (c *Cache) GetRenderedPage(ctx context.Context, slug, mode string) (string, error) {
	if c == nil {
		return "", ErrCacheMiss
	}
	res := c.client.Get(ctx, renderedPageKey(slug, mode))
	if res.Err() != nil {
		if errors.Is(res.Err(), redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", res.Err()
	}
	return res.Val(), nil
}

func (c *Cache) SetRenderedPage(ctx context.Context, slug, mode, rendered string) error {
	if c == nil {
		return nil
	}
	return c.client.Set(ctx, renderedPageKey(slug, mode), rendered, renderedPageTTL).Err()
}

// InvalidatePage drops every rendered variant of a page. Called after
// each save; a failure here only costs a stale TTL window, so it is
// logged rather than propagated.
func (c *Cache) InvalidatePage(ctx context.Context, slug string) {
	if c == nil {
		return
	}
	_, err := c.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		for _, mode := range []string{"markdown", "plain"} {
			if err := p.Del(ctx, renderedPageKey(slug, mode)).Err(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logrus.Errorf("error invalidating rendered page %s: %v", slug, err)
	}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
