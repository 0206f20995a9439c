package elevenlabs

import (
	"encoding/json"
	"time"

	"github.com/go-redis/redis"

	"voicesmith/pkg/Logger"
)

// Cache keys and lifetimes for vendor reads. Voices invalidate on every
// clone or delete, so their TTL is only a safety net.
const (
	keyVoices = "elevenlabs:voices"
	keyUsage  = "elevenlabs:usage"
	keyModels = "elevenlabs:models"

	voicesTTL = 30 * time.Second
	usageTTL  = time.Minute
	modelsTTL = time.Hour
)

// Cache is a small JSON read cache over redis for vendor responses. A nil
// *Cache is valid and caches nothing, as is a Cache with a nil client.
type Cache struct {
	client *redis.Client
	logger *Logger.Logger
}

// NewCache creates a vendor response cache.
func NewCache(client *redis.Client, logger *Logger.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

// Fetch loads a cached value into v, reporting whether it was present.
func (c *Cache) Fetch(key string, v interface{}) bool {
	if c == nil || c.client == nil {
		return false
	}
	raw, err := c.client.Get(key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warnf("cache read %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		c.logger.Warnf("cache entry %s corrupt, dropping: %v", key, err)
		c.client.Del(key)
		return false
	}
	return true
}

// Store writes a value with the given lifetime. Failures are logged and
// swallowed; the cache must never fail a vendor call that already succeeded.
func (c *Cache) Store(key string, v interface{}, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		c.logger.Warnf("cache encode %s failed: %v", key, err)
		return
	}
	if err := c.client.Set(key, raw, ttl).Err(); err != nil {
		c.logger.Warnf("cache write %s failed: %v", key, err)
	}
}

// Invalidate drops a key.
func (c *Cache) Invalidate(key string) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(key).Err(); err != nil {
		c.logger.Warnf("cache invalidate %s failed: %v", key, err)
	}
}
