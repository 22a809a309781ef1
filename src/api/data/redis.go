package data

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const breedsKey = "catapi:breeds"

func MustRedis(url string) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// CachedBreeds returns the cached breed names, or nil when the cache is
// cold or unreachable.
func CachedBreeds(ctx context.Context, rdb *redis.Client) []string {
	raw, err := rdb.Get(ctx, breedsKey).Bytes()
	if err != nil {
		return nil
	}
	var names []string
	if err := json.Unmarshal(raw, &names); err != nil {
		return nil
	}
	return names
}

func CacheBreeds(ctx context.Context, rdb *redis.Client, names []string, ttl time.Duration) error {
	raw, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, breedsKey, raw, ttl).Err()
}
