package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	LexiconKeyPattern = "lexicon:%s"

	LexiconTTL = 24 * time.Hour
)

type Config struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// Cache is a redis client with a process-local read-through layer. The local
// layer exists because lexicon reads sit on the hot path of every message.
type Cache struct {
	client     *redis.Client
	localCache sync.Map
}

func NewCache(config Config) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	return &Cache{
		client:     client,
		localCache: sync.Map{},
	}, nil
}

// NewCacheWithClient wraps an existing client; used by tests with redismock.
func NewCacheWithClient(client *redis.Client) *Cache {
	return &Cache{
		client:     client,
		localCache: sync.Map{},
	}
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	if value, ok := c.localCache.Load(key); ok {
		str, err := safeStringCast(value)
		if err != nil {
			return "", fmt.Errorf("cache value error: %w", err)
		}
		return str, nil
	}
	return c.client.Get(ctx, key).Result()
}

func (c *Cache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := c.client.Set(ctx, key, value, expiration).Err(); err != nil {
		return err
	}
	c.localCache.Store(key, value)
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return err
	}
	c.localCache.Delete(key)
	return nil
}

func (c *Cache) Client() *redis.Client {
	return c.client
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func safeStringCast(value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected string, got %T", value)
	}
	return str, nil
}
