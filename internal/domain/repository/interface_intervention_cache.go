package repository

import (
	"context"
	"time"
)

// InterventionCache 介入の重複通知を防ぐためのキャッシュ
// 最適化ロジックの外側で所有される明示的なコンポーネント（オプトイン）
type InterventionCache interface {
	// SeenRecently キーがTTL内に記録済みかを返す
	SeenRecently(ctx context.Context, key string) (bool, error)

	// MarkSeen キーをTTL付きで記録する
	MarkSeen(ctx context.Context, key string, ttl time.Duration) error
}
