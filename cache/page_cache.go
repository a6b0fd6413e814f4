package cache

import (
	"context"
	"encoding/json"
	"time"

	"Yatube/config"
	"Yatube/utils/logger"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CachedPage is a rendered response ready to be replayed.
type CachedPage struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// PageCache stores rendered pages for a fixed time window.
type PageCache interface {
	Get(ctx context.Context, key string) (*CachedPage, bool)
	Set(ctx context.Context, key string, page *CachedPage)
	Clear(ctx context.Context) error
}

// DefaultPrefix namespaces page entries in Redis.
const DefaultPrefix = "yatube:page:"

const memoryCacheSize = 1024

type RedisPageCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisPageCache(client *redis.Client, prefix string, ttl time.Duration) *RedisPageCache {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &RedisPageCache{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisPageCache) Get(ctx context.Context, key string) (*CachedPage, bool) {
	raw, found, err := Get(ctx, r.client, r.prefix+key)
	if err != nil {
		logger.Logger.Warn("page cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	var page CachedPage
	if err := json.Unmarshal(raw, &page); err != nil {
		logger.Logger.Warn("page cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &page, true
}

func (r *RedisPageCache) Set(ctx context.Context, key string, page *CachedPage) {
	raw, err := json.Marshal(page)
	if err != nil {
		logger.Logger.Warn("page cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := Set(ctx, r.client, r.prefix+key, raw, r.ttl); err != nil {
		logger.Logger.Warn("page cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Clear drops every page under the cache prefix and nothing else.
func (r *RedisPageCache) Clear(ctx context.Context) error {
	return DeleteByPrefix(ctx, r.client, r.prefix)
}

// MemoryPageCache keeps pages in an in-process LRU whose entries expire
// after the TTL.
type MemoryPageCache struct {
	entries *lru.LRU[string, *CachedPage]
}

func NewMemoryPageCache(size int, ttl time.Duration) *MemoryPageCache {
	if size <= 0 {
		size = memoryCacheSize
	}
	return &MemoryPageCache{entries: lru.NewLRU[string, *CachedPage](size, nil, ttl)}
}

func (m *MemoryPageCache) Get(_ context.Context, key string) (*CachedPage, bool) {
	return m.entries.Get(key)
}

func (m *MemoryPageCache) Set(_ context.Context, key string, page *CachedPage) {
	m.entries.Add(key, page)
}

func (m *MemoryPageCache) Clear(_ context.Context) error {
	m.entries.Purge()
	return nil
}

// New picks Redis when Init connected a client and the in-process cache
// otherwise.
func New(cfg *config.Config) PageCache {
	if Client != nil {
		return NewRedisPageCache(Client, DefaultPrefix, cfg.IndexCacheTTL)
	}
	return NewMemoryPageCache(memoryCacheSize, cfg.IndexCacheTTL)
}
