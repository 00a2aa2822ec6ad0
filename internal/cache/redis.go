package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"localnews/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	articleIDKeyPrefix   = "article:id:"
	articleSlugKeyPrefix = "article:slug:"
	articleCountKey      = "articles:count"
)

// RedisClient is a read-through cache for single-article lookups and the
// article count. List and search pages are never cached.
type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(ctx context.Context, redisURL string, ttl time.Duration) (*RedisClient, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return New(client, ttl), nil
}

// New wraps an existing client.
func New(client *redis.Client, ttl time.Duration) *RedisClient {
	return &RedisClient{client: client, ttl: ttl}
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

func idKey(id string) string     { return articleIDKeyPrefix + id }
func slugKey(slug string) string { return articleSlugKeyPrefix + slug }

// ArticleByID returns the cached article and whether it was present.
func (r *RedisClient) ArticleByID(ctx context.Context, id string) (*models.Article, bool, error) {
	return r.getArticle(ctx, idKey(id))
}

func (r *RedisClient) ArticleBySlug(ctx context.Context, slug string) (*models.Article, bool, error) {
	return r.getArticle(ctx, slugKey(slug))
}

func (r *RedisClient) getArticle(ctx context.Context, key string) (*models.Article, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get %s from Redis: %w", key, err)
	}

	var article models.Article
	if err := json.Unmarshal(data, &article); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached article: %w", err)
	}
	return &article, true, nil
}

// StoreArticle caches the article under both its id and slug.
func (r *RedisClient) StoreArticle(ctx context.Context, article *models.Article) error {
	data, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("failed to marshal article: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, idKey(article.ID), data, r.ttl)
		pipe.Set(ctx, slugKey(article.Slug), data, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store article in Redis: %w", err)
	}
	return nil
}

// InvalidateArticle drops the id entry, every listed slug entry and the count.
func (r *RedisClient) InvalidateArticle(ctx context.Context, id string, slugs ...string) error {
	keys := []string{idKey(id), articleCountKey}
	for _, s := range slugs {
		if s != "" {
			keys = append(keys, slugKey(s))
		}
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisClient) Count(ctx context.Context) (int64, bool, error) {
	v, err := r.client.Get(ctx, articleCountKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, nil
	}
	return n, true, nil
}

func (r *RedisClient) StoreCount(ctx context.Context, n int64) error {
	return r.client.Set(ctx, articleCountKey, n, r.ttl).Err()
}

// Status reports pool statistics for the health endpoint.
func (r *RedisClient) Status(ctx context.Context) (map[string]interface{}, error) {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()
	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
	}, nil
}
