//go:build unit

package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "billing:42:0:upcoming", viewKey(42, 0, "upcoming"))
	assert.Equal(t, "billing:42:3:history", viewKey(42, 3, "history"))
	assert.Equal(t, "billing:42:gen", generationKey(42))
	assert.NotEqual(t, viewKey(42, 1, "upcoming"), viewKey(42, 2, "upcoming"))
}

func TestNopBillingCache(t *testing.T) {
	var c NopBillingCache
	ctx := context.Background()

	gen, err := c.Generation(ctx, 1)
	assert.NoError(t, err)
	assert.Zero(t, gen)
	assert.NoError(t, c.Set(ctx, 1, gen, "history", []string{"x"}))

	var dst []string
	hit, err := c.Get(ctx, 1, gen, "history", &dst)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, dst)
	assert.NoError(t, c.InvalidateUser(ctx, 1))
}
