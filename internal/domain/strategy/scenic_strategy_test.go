package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tabitomo-App/internal/domain/model"
)

// TestScenicStrategy_Gating は天候ゲーティングのフェイルファスト動作をテストする
func TestScenicStrategy_Gating(t *testing.T) {
	ctx := context.Background()

	t.Run("視界5km未満は経路計算せずに無効化する", func(t *testing.T) {
		in := fairWeatherInput()
		in.Weather.VisibilityKm = 3.0

		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		places := &stubPlacesProvider{}
		pkg := NewScenicStrategy(routing, places).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		require.NotNil(t, pkg.Reason)
		assert.Equal(t, "Foggy view: visibility 3km < 5km minimum", pkg.Reason.Message())
		assert.True(t, pkg.DowngradeWarning)
		assert.Equal(t, model.ModeEfficiency, pkg.FallbackMode)
		// フェイルファスト: コラボレータは一切呼ばれない
		assert.Equal(t, 0, routing.callCount())
		assert.Equal(t, 0, places.calls)
	})

	t.Run("降水確率30%超は経路計算せずに無効化する", func(t *testing.T) {
		in := fairWeatherInput()
		in.Weather.PrecipitationProbability = 45.0

		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		pkg := NewScenicStrategy(routing, &stubPlacesProvider{}).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		assert.Equal(t, "Rain expected: 45% > 30% threshold", pkg.Reason.Message())
		assert.True(t, pkg.DowngradeWarning)
		assert.Equal(t, 0, routing.callCount())
	})

	t.Run("境界値ちょうどでは無効化しない", func(t *testing.T) {
		in := fairWeatherInput()
		in.Weather.VisibilityKm = 5.0
		in.Weather.PrecipitationProbability = 30.0

		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		pkg := NewScenicStrategy(routing, &stubPlacesProvider{}).Optimize(ctx, in)

		assert.False(t, pkg.Disabled)
	})

	t.Run("ルート取得失敗はフォールバック案内なしで無効化する", func(t *testing.T) {
		in := fairWeatherInput()
		routing := &stubRoutingProvider{err: errors.New("directions API error")}
		pkg := NewScenicStrategy(routing, &stubPlacesProvider{}).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		assert.Equal(t, model.DisableRouteFailed, pkg.Reason.Code)
		assert.Equal(t, "Route calculation failed", pkg.Reason.Message())
		assert.False(t, pkg.DowngradeWarning)
	})

	t.Run("スポット検索失敗は原因を区別して無効化する", func(t *testing.T) {
		in := fairWeatherInput()
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		places := &stubPlacesProvider{err: errors.New("places API error")}
		pkg := NewScenicStrategy(routing, places).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		assert.Equal(t, model.DisablePlacesSearchFailed, pkg.Reason.Code)
		assert.Equal(t, "Place search failed", pkg.Reason.Message())
		assert.False(t, pkg.DowngradeWarning)
	})
}

// TestScenicStrategy_Optimize は有効時のパッケージ内容をテストする
func TestScenicStrategy_Optimize(t *testing.T) {
	ctx := context.Background()
	in := fairWeatherInput()

	t.Run("所要時間+20%・距離+15%で景観ルートを見積もる", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{
			Polyline:        "abc123",
			DurationSeconds: 1800,
			DistanceMeters:  10000,
		}}
		pkg := NewScenicStrategy(routing, &stubPlacesProvider{}).Optimize(ctx, in)

		require.False(t, pkg.Disabled)
		require.NotNil(t, pkg.Route)
		assert.Equal(t, 2160, pkg.Route.DurationSeconds)
		assert.Equal(t, 11500, pkg.Route.DistanceMeters)
		assert.Equal(t, "abc123", pkg.Route.Polyline)
		assert.Equal(t, "20%", pkg.DurationIncrease)
		assert.Equal(t, 0.85, pkg.ScenicScore)
	})

	t.Run("絶景スポットはスコア上位5件まで", func(t *testing.T) {
		midpoint := model.LatLng{Lat: 35.05, Lng: 135.05}
		candidates := make([]*model.POICandidate, 0, 7)
		for _, name := range []string{"展望台A", "展望台B", "展望台C", "展望台D", "展望台E", "展望台F", "展望台G"} {
			candidates = append(candidates, testCandidate(name, 4.3, 200, midpoint, "tourist_attraction"))
		}
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		places := &stubPlacesProvider{candidates: candidates}
		pkg := NewScenicStrategy(routing, places).Optimize(ctx, in)

		assert.Len(t, pkg.ViewPoints, 5)
		// 検索は中間地点周辺2km + キーワード付き
		assert.Equal(t, 2000, places.lastQuery.RadiusMeters)
		assert.Equal(t, "scenic view nature", places.lastQuery.Keyword)
	})

	t.Run("view属性とparkタイプはボーナスで優先される", func(t *testing.T) {
		loc := model.LatLng{Lat: 35.05, Lng: 135.05}
		withView := testCandidate("絶景ポイント", 4.2, 300, loc, "tourist_attraction")
		withView.Attributes = []string{model.AttributeView}
		park := testCandidate("公園", 4.2, 300, loc, "park")
		plain := testCandidate("普通のスポット", 4.2, 300, loc, "point_of_interest")

		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 1800}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{plain, park, withView}}
		pkg := NewScenicStrategy(routing, places).Optimize(ctx, in)

		require.Len(t, pkg.ViewPoints, 3)
		assert.Equal(t, "絶景ポイント", pkg.ViewPoints[0].Candidate.Name)
		assert.Equal(t, "公園", pkg.ViewPoints[1].Candidate.Name)
		assert.Equal(t, "普通のスポット", pkg.ViewPoints[2].Candidate.Name)
	})
}
