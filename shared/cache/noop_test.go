package cache_test

import (
	"context"
	"errors"
	"ohanna/infras/otel/mocks"
	"ohanna/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache_WithoutClient(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())
	ctx := context.Background()

	assert.NoError(t, c.Save(ctx, "k", map[string]int{"a": 1}, 60))

	var out map[string]int
	err := c.Get(ctx, "k", &out)

	assert.True(t, errors.Is(err, cache.Nil))
	assert.Nil(t, out)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Clear(ctx, "k*"))
}
