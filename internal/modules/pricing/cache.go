// README: Redis-backed quote cache so callers can re-fetch a quote by id.
package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const quoteKeyPrefix = "quotes:%s"

// QuoteCache stores computed quotes until their validity expires. The TTL
// doubles as the validity horizon, so an expired quote simply disappears
// and the caller must re-quote.
type QuoteCache struct {
	redis *redis.Client
}

func NewQuoteCache(redis *redis.Client) *QuoteCache {
	return &QuoteCache{redis: redis}
}

func (c *QuoteCache) Put(ctx context.Context, q *Quote, ttl time.Duration) error {
	payload, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, quoteKey(q.ID), payload, ttl).Err()
}

func (c *QuoteCache) Get(ctx context.Context, id string) (*Quote, error) {
	val, err := c.redis.Get(ctx, quoteKey(id)).Result()
	if err == redis.Nil {
		return nil, ErrQuoteNotFound
	}
	if err != nil {
		return nil, err
	}
	var q Quote
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func quoteKey(id string) string {
	return fmt.Sprintf(quoteKeyPrefix, id)
}
