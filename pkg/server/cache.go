package server

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/klastad/course-finder/pkg/types"
	"github.com/redis/go-redis/v9"
)

const cacheTTL = 5 * time.Minute

// ResponseCache keeps whole encoded browse responses in Redis. Keys
// embed the catalog generation, so any catalog write makes every older
// entry unreachable and TTL cleans them up.
type ResponseCache struct {
	client *redis.Client
}

func NewResponseCache(addr, password string, db int) *ResponseCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &ResponseCache{client: rdb}
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

func (c *ResponseCache) Set(ctx context.Context, key string, data []byte) error {
	return c.client.Set(ctx, key, data, cacheTTL).Err()
}

func (c *ResponseCache) Close() error {
	return c.client.Close()
}

// BrowseCacheKey hashes the full normalized request, criteria and
// paging included, scoped by the catalog generation.
func BrowseCacheKey(generation uint64, req *types.BrowseRequest) string {
	raw, err := sonic.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha1.Sum(raw)
	return fmt.Sprintf("browse:%s:%d:%s", req.Scope, generation, hex.EncodeToString(sum[:]))
}
