package lexicon

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/cache"
)

// RedisProvider layers redis on top of a fallback provider so that curated
// list updates pushed by the trust & safety team reach all replicas without a
// redeploy. On a cache miss the fallback list is seeded into redis. Redis
// being down degrades to the fallback lists, never to an empty lexicon.
type RedisProvider struct {
	cache    *cache.Cache
	fallback Provider
	logger   *logrus.Logger

	once   sync.Once
	loaded map[string][]string
	err    error
}

func NewRedisProvider(c *cache.Cache, fallback Provider, logger *logrus.Logger) *RedisProvider {
	return &RedisProvider{
		cache:    c,
		fallback: fallback,
		logger:   logger,
	}
}

func (p *RedisProvider) Load(ctx context.Context) error {
	p.once.Do(func() {
		if err := p.fallback.Load(ctx); err != nil {
			p.err = fmt.Errorf("failed to load fallback lexicon: %w", err)
			return
		}

		loaded := make(map[string][]string)
		for category := range allCategories() {
			loaded[category] = p.loadCategory(ctx, category)
		}
		p.loaded = loaded
	})
	return p.err
}

func (p *RedisProvider) Get(category string) []string {
	if p.loaded == nil {
		return nil
	}
	return p.loaded[category]
}

func (p *RedisProvider) loadCategory(ctx context.Context, category string) []string {
	key := fmt.Sprintf(cache.LexiconKeyPattern, category)

	raw, err := p.cache.Get(ctx, key)
	if err == nil {
		var words []string
		if jsonErr := json.Unmarshal([]byte(raw), &words); jsonErr == nil {
			return words
		}
		p.logger.WithField("category", category).Warn("malformed lexicon entry in redis, using fallback")
	} else if err != redis.Nil {
		p.logger.WithError(err).WithField("category", category).Warn("lexicon cache unavailable, using fallback")
	}

	words := p.fallback.Get(category)

	if err == redis.Nil && len(words) > 0 {
		encoded, jsonErr := json.Marshal(words)
		if jsonErr == nil {
			if setErr := p.cache.Set(ctx, key, string(encoded), cache.LexiconTTL); setErr != nil {
				p.logger.WithError(setErr).WithField("category", category).Warn("failed to seed lexicon cache")
			}
		}
	}

	return words
}

func allCategories() map[string]struct{} {
	categories := make(map[string]struct{}, len(defaultKeywords))
	for category := range defaultKeywords {
		categories[category.String()] = struct{}{}
	}
	return categories
}
