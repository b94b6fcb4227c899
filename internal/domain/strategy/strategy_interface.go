package strategy

import (
	"math"

	"Tabitomo-App/internal/domain/model"
)

// OptimizeInput 各モード最適化器への共通入力
// WeatherSnapshotはリクエスト全体で共有される読み取り専用の値
type OptimizeInput struct {
	Origin      model.LatLng
	Destination model.LatLng
	Weather     model.WeatherSnapshot
	Scores      model.WeatherScores
}

// 各モードの最適化器は戻り値の型が異なるため（EfficiencyPackage /
// ScenicPackage / FoodiePackage）、共通インターフェースではなく
// 具体型のOptimizeメソッドとして提供する。エラーは返さず、
// コラボレータ障害は必ずdisabledパッケージに変換する。

// routeQualityScore 所要時間からルート品質スコアを計算する
// 1時間以内なら1.0、それ以降は時間に反比例して減衰する
func routeQualityScore(durationSeconds int) float64 {
	if durationSeconds <= 0 {
		return 0.0
	}
	return math.Min(1.0, 3600.0/float64(durationSeconds))
}
