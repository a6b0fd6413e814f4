package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Yatube/config"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

var errNoClient = errors.New("redis client not initialized")

// Init connects Redis using either:
// - REDIS_URL (managed Redis, rediss:// enables TLS)
// - or REDIS_ADDR with optional credentials
// An empty configuration leaves Client nil.
func Init(cfg *config.Config) error {
	switch {
	case cfg.RedisURL != "":
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to parse REDIS_URL: %w", err)
		}
		Client = redis.NewClient(opt)

	case cfg.RedisAddr != "":
		Client = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Username: cfg.RedisUsername,
		})

	default:
		Client = nil
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := Client.Ping(ctx).Err(); err != nil {
		_ = Client.Close()
		Client = nil
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	return nil
}

// Get returns the raw value stored under key. A missing key reports
// found=false with a nil error.
func Get(ctx context.Context, client *redis.Client, key string) ([]byte, bool, error) {
	if client == nil {
		return nil, false, errNoClient
	}

	val, err := client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

func Set(ctx context.Context, client *redis.Client, key string, value []byte, ttl time.Duration) error {
	if client == nil {
		return errNoClient
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// DeleteByPrefix removes every key starting with prefix.
func DeleteByPrefix(ctx context.Context, client *redis.Client, prefix string) error {
	if client == nil {
		return nil
	}

	var cursor uint64
	for {
		keys, next, err := client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("scan %s*: %w", prefix, err)
		}
		if len(keys) > 0 {
			if err := client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete %s*: %w", prefix, err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
