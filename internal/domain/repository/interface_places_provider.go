package repository

import (
	"context"

	"Tabitomo-App/internal/domain/model"
)

// PlacesQuery スポット検索の条件
type PlacesQuery struct {
	Location     model.LatLng
	RadiusMeters int
	Types        []string // 検索対象のタイプ（いずれかに一致）
	Keyword      string   // 任意のキーワード
	MinRating    float64  // 0なら制限なし
	MinReviews   int      // 0なら制限なし
}

// PlacesProvider スポット検索コラボレータのインターフェース
type PlacesProvider interface {
	// SearchNearby 条件に合う候補スポットを検索する
	SearchNearby(ctx context.Context, query PlacesQuery) ([]*model.POICandidate, error)
}
