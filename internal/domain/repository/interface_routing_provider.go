package repository

import (
	"context"

	"Tabitomo-App/internal/domain/model"
)

// RoutingProvider 経路検索コラボレータのインターフェース
// トランスポートやリトライは実装側（外部）の責務で、コアは型付きの結果だけを受け取る
type RoutingProvider interface {
	// GetRoute origin→destinationの最速ルートを取得する
	GetRoute(ctx context.Context, origin, destination model.LatLng) (*model.RoutePlan, error)
}
