package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisInterventionCache 介入の重複通知を防ぐRedisベースのキャッシュ
// 最適化ロジックの外で所有される明示的なコンポーネントとして実装する
type RedisInterventionCache struct {
	client *redis.Client
}

// NewRedisInterventionCache 新しいキャッシュインスタンスを作成する
func NewRedisInterventionCache(client *redis.Client) *RedisInterventionCache {
	return &RedisInterventionCache{client: client}
}

// SeenRecently キーがTTL内に記録済みかを返す
func (c *RedisInterventionCache) SeenRecently(ctx context.Context, key string) (bool, error) {
	count, err := c.client.Exists(ctx, cacheKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("キャッシュの参照に失敗: %w", err)
	}
	return count > 0, nil
}

// MarkSeen キーをTTL付きで記録する
func (c *RedisInterventionCache) MarkSeen(ctx context.Context, key string, ttl time.Duration) error {
	if err := c.client.Set(ctx, cacheKey(key), "1", ttl).Err(); err != nil {
		return fmt.Errorf("キャッシュの書き込みに失敗: %w", err)
	}
	return nil
}

func cacheKey(key string) string {
	return "intervention:" + key
}
