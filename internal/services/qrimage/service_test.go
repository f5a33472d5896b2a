package qrimage

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainErrors "pianostyle/internal/errors"
	"pianostyle/internal/models"
	"pianostyle/internal/services/codec"
)

const testAddr = "0xAbC000000000000000000000000000000000dEaD"

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
	hits int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.data[key]; ok {
		c.hits++
		return v, nil
	}
	return nil, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
	return nil
}

func newTestService(cache CacheRepository) Service {
	return NewService(codec.NewService("https://pianostyle.app", nil), cache, nil)
}

func TestGenerate(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	t.Run("empty data rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, "", Options{})
		assert.ErrorIs(t, err, domainErrors.ErrEmptyInput)
	})

	t.Run("defaults applied", func(t *testing.T) {
		img, err := svc.Generate(ctx, "hello", Options{})
		require.NoError(t, err)
		assert.Equal(t, DefaultSize, img.Size)
		assert.Equal(t, LevelMedium, img.Level)
		assert.NotEmpty(t, img.PNG)
		assert.True(t, strings.HasPrefix(img.DataURL, "data:image/png;base64,"))
	})

	t.Run("explicit options respected", func(t *testing.T) {
		img, err := svc.Generate(ctx, "hello", Options{Size: 320, Level: LevelHighest})
		require.NoError(t, err)
		assert.Equal(t, 320, img.Size)
		assert.Equal(t, LevelHighest, img.Level)
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, "hello", Options{Level: "X"})
		assert.ErrorIs(t, err, domainErrors.ErrEncodingFailure)
	})

	t.Run("bad color rejected", func(t *testing.T) {
		_, err := svc.Generate(ctx, "hello", Options{DarkColor: "red"})
		assert.ErrorIs(t, err, domainErrors.ErrEncodingFailure)

		_, err = svc.Generate(ctx, "hello", Options{DarkColor: "#12zz34"})
		assert.ErrorIs(t, err, domainErrors.ErrEncodingFailure)
	})

	t.Run("custom colors render", func(t *testing.T) {
		img, err := svc.Generate(ctx, "hello", Options{DarkColor: "#112233", LightColor: "#ffffff"})
		require.NoError(t, err)
		assert.NotEmpty(t, img.PNG)
	})
}

func TestGenerateCache(t *testing.T) {
	cache := newMemoryCache()
	svc := newTestService(cache)
	ctx := context.Background()

	first, err := svc.Generate(ctx, "hello", Options{})
	require.NoError(t, err)

	second, err := svc.Generate(ctx, "hello", Options{})
	require.NoError(t, err)
	assert.Equal(t, first.PNG, second.PNG)
	assert.Equal(t, 1, cache.sets)
	assert.Equal(t, 1, cache.hits)

	// Any changed input misses the cache; a stale image is never reused.
	_, err = svc.Generate(ctx, "hello", Options{Size: 400})
	require.NoError(t, err)
	assert.Equal(t, 2, cache.sets)

	_, err = svc.Generate(ctx, "hello!", Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, cache.sets)
}

func TestGeneratePayment(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	t.Run("defaults to highest correction level", func(t *testing.T) {
		img, err := svc.GeneratePayment(ctx, models.Payment{Address: testAddr, Amount: "25"}, Options{})
		require.NoError(t, err)
		assert.Equal(t, LevelHighest, img.Level)
	})

	t.Run("explicit level wins", func(t *testing.T) {
		img, err := svc.GeneratePayment(ctx, models.Payment{Address: testAddr}, Options{Level: LevelLow})
		require.NoError(t, err)
		assert.Equal(t, LevelLow, img.Level)
	})

	t.Run("invalid payment rejected", func(t *testing.T) {
		_, err := svc.GeneratePayment(ctx, models.Payment{Address: "0x123"}, Options{})
		assert.ErrorIs(t, err, domainErrors.ErrInvalidAddress)
	})
}
