package lexicon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wsabol/oracle-moderation/pkg/cache"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

func setupRedisProvider(t *testing.T) (*RedisProvider, redismock.ClientMock) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	client, clientMock := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	fallback := NewStaticProvider(nil)
	require.NoError(t, fallback.Load(context.Background()))

	return NewRedisProvider(c, fallback, logger), clientMock
}

func TestRedisProvider_CuratedListWins(t *testing.T) {
	provider, clientMock := setupRedisProvider(t)
	category := violation.TypeAbusiveLanguage.String()
	key := fmt.Sprintf(cache.LexiconKeyPattern, category)

	curated, err := json.Marshal([]string{"numpty", "plonker"})
	require.NoError(t, err)
	clientMock.ExpectGet(key).SetVal(string(curated))

	words := provider.loadCategory(context.Background(), category)
	assert.Equal(t, []string{"numpty", "plonker"}, words)
}

func TestRedisProvider_MissSeedsCache(t *testing.T) {
	provider, clientMock := setupRedisProvider(t)
	category := violation.TypeSelfHarm.String()
	key := fmt.Sprintf(cache.LexiconKeyPattern, category)

	expected := provider.fallback.Get(category)
	encoded, err := json.Marshal(expected)
	require.NoError(t, err)

	clientMock.ExpectGet(key).RedisNil()
	clientMock.ExpectSet(key, string(encoded), cache.LexiconTTL).SetVal("OK")

	words := provider.loadCategory(context.Background(), category)
	assert.Equal(t, expected, words)
	assert.NoError(t, clientMock.ExpectationsWereMet())
}

func TestRedisProvider_RedisDownFallsBack(t *testing.T) {
	provider, clientMock := setupRedisProvider(t)
	category := violation.TypeSelfHarm.String()
	key := fmt.Sprintf(cache.LexiconKeyPattern, category)

	clientMock.ExpectGet(key).SetErr(errors.New("connection refused"))

	words := provider.loadCategory(context.Background(), category)
	assert.Equal(t, provider.fallback.Get(category), words)
	assert.Contains(t, words, "kill myself")
}

func TestRedisProvider_MalformedEntryFallsBack(t *testing.T) {
	provider, clientMock := setupRedisProvider(t)
	category := violation.TypeSelfHarm.String()
	key := fmt.Sprintf(cache.LexiconKeyPattern, category)

	clientMock.ExpectGet(key).SetVal("{not json")

	words := provider.loadCategory(context.Background(), category)
	assert.Equal(t, provider.fallback.Get(category), words)
}

func TestRedisProvider_FallbackLoadFailure(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	client, _ := redismock.NewClientMock()
	c := cache.NewCacheWithClient(client)

	fallback := NewStaticProvider(map[string]interface{}{
		violation.TypeSelfHarm.String(): map[string]interface{}{
			"extra_keywords": 42,
		},
	})

	provider := NewRedisProvider(c, fallback, logger)
	assert.Error(t, provider.Load(context.Background()))
	assert.Empty(t, provider.Get(violation.TypeSelfHarm.String()))
}
