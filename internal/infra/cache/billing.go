package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "billing"

// RedisBillingCache stores each billing view as JSON under billing:<user>:<gen>:<view>.
// The generation counter lives at billing:<user>:gen without expiry; views of older
// generations are left to their TTL.
type RedisBillingCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

func NewRedisBillingCache(client redis.UniversalClient, ttl time.Duration) *RedisBillingCache {
	return &RedisBillingCache{client: client, ttl: ttl}
}

func (c *RedisBillingCache) Generation(ctx context.Context, userID int64) (int64, error) {
	gen, err := c.client.Get(ctx, generationKey(userID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errs.Wrap(err, "billing cache generation")
	}
	return gen, nil
}

func (c *RedisBillingCache) Get(ctx context.Context, userID, gen int64, view string, dst any) (bool, error) {
	raw, err := c.client.Get(ctx, viewKey(userID, gen, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errs.Wrap(err, "billing cache get")
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errs.Wrap(err, "billing cache decode")
	}
	return true, nil
}

func (c *RedisBillingCache) Set(ctx context.Context, userID, gen int64, view string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errs.Wrap(err, "billing cache encode")
	}
	return errs.Wrap(c.client.Set(ctx, viewKey(userID, gen, view), raw, c.ttl).Err(), "billing cache set")
}

func (c *RedisBillingCache) InvalidateUser(ctx context.Context, userID int64) error {
	return errs.Wrap(c.client.Incr(ctx, generationKey(userID)).Err(), "billing cache invalidate")
}

func viewKey(userID, gen int64, view string) string {
	return fmt.Sprintf("%s:%d:%d:%s", keyPrefix, userID, gen, view)
}

func generationKey(userID int64) string {
	return fmt.Sprintf("%s:%d:gen", keyPrefix, userID)
}

// NopBillingCache is used when Redis is not configured. Every read misses.
type NopBillingCache struct{}

func (NopBillingCache) Generation(context.Context, int64) (int64, error)             { return 0, nil }
func (NopBillingCache) Get(context.Context, int64, int64, string, any) (bool, error) { return false, nil }
func (NopBillingCache) Set(context.Context, int64, int64, string, any) error         { return nil }
func (NopBillingCache) InvalidateUser(context.Context, int64) error                  { return nil }

var (
	_ shared.BillingCache = (*RedisBillingCache)(nil)
	_ shared.BillingCache = NopBillingCache{}
)
