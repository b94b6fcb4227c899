package repository

import (
	"context"

	"Tabitomo-App/internal/domain/model"
)

// WeatherProvider 天候コラボレータのインターフェース
type WeatherProvider interface {
	// GetCurrent 指定地点の現在の天候スナップショットを取得する
	GetCurrent(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error)
}
