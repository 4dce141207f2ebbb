package storage

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRedisAdapter_KeyValue(t *testing.T) {
	client := getRedisClient(t)
	adapter := NewRedisAdapter(client)
	defer adapter.Close()

	ctx := context.Background()

	// Setup
	client.Del(ctx, redisKeyPrefix+"test-products")

	testKeyValueRepository(t, adapter, "test-products")

	// Verify prefix
	exists, _ := client.Exists(ctx, redisKeyPrefix+"test-products").Result()
	if exists != 1 {
		t.Error("expected prefixed key in redis")
	}

	// Cleanup
	client.Del(ctx, redisKeyPrefix+"test-products")
}
