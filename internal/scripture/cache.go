package scripture

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/selahapp/selah/internal/logger"
)

// Cache keeps chapter text in Redis. Every failure degrades to a miss;
// the provider always has the files to fall back on.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	log    logger.Logger
}

func NewCache(client *redis.Client, ttl time.Duration, log logger.Logger) *Cache {
	return &Cache{client: client, ttl: ttl, log: log}
}

// Get returns a cached chapter, if present.
func (c *Cache) Get(ctx context.Context, book, chapter int) (Chapter, bool) {
	key := chapterKey(book, chapter)
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("chapter cache read failed",
				logger.String("key", key),
				logger.Error(err))
		}
		return Chapter{}, false
	}

	var ch Chapter
	if err := json.Unmarshal(data, &ch); err != nil {
		c.log.Warn("dropping corrupt cache entry",
			logger.String("key", key),
			logger.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return Chapter{}, false
	}
	return ch, true
}

// Put stores a chapter. Write failures are logged and absorbed.
func (c *Cache) Put(ctx context.Context, ch Chapter) {
	data, err := json.Marshal(ch)
	if err != nil {
		return
	}
	key := chapterKey(ch.Book, ch.Chapter)
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("chapter cache write failed",
			logger.String("key", key),
			logger.Error(err))
	}
}
