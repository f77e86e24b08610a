package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/stockwatch/internal/inventory/stock"
	"github.com/tair/stockwatch/pkg/logger"
)

const (
	keyPrefix  = "stockwatch:items:list:"
	scanBatch  = 100
	defaultTTL = time.Minute
)

// ListCache keeps rendered list responses in Redis.
// Entries depend on the calendar day, so a stale day never serves a hit.
type ListCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisClient opens a client and verifies connectivity
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	logger.Logger.Info().Str("addr", addr).Int("db", db).Msg("Redis connection established")
	return client, nil
}

func NewListCache(client redis.Cmdable, ttl time.Duration) *ListCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ListCache{client: client, ttl: ttl}
}

// Key derives the cache key for a list query evaluated on day
func Key(q stock.Query, day time.Time) string {
	raw := fmt.Sprintf("%s|%s|%s|%s", q.Search, q.Status, q.Sort, day.Format("2006-01-02"))
	sum := sha256.Sum256([]byte(raw))
	return keyPrefix + hex.EncodeToString(sum[:])
}

// Get returns the cached payload; ok is false on a miss
func (c *ListCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache: %w", err)
	}
	return data, true, nil
}

func (c *ListCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	return nil
}

// Invalidate drops every cached list response
func (c *ListCache) Invalidate(ctx context.Context) error {
	var (
		cursor  uint64
		removed int64
	)
	for {
		keys, next, err := c.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cache keys: %w", err)
		}
		if len(keys) > 0 {
			n, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return fmt.Errorf("failed to delete cache keys: %w", err)
			}
			removed += n
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	logger.Logger.Debug().Int64("removed", removed).Msg("List cache invalidated")
	return nil
}
