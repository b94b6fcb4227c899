package strategy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tabitomo-App/internal/domain/model"
)

// TestFoodieStrategy_Selection はレストラン選定の2段階絞り込みをテストする
func TestFoodieStrategy_Selection(t *testing.T) {
	ctx := context.Background()
	in := fairWeatherInput()
	loc := model.LatLng{Lat: 35.05, Lng: 135.05}

	t.Run("厳格条件(4.6/500)を満たす店があればそちらを優先する", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("名店", 4.7, 600, loc, "restaurant"),
			testCandidate("良い店", 4.5, 200, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.False(t, pkg.Disabled)
		require.NotNil(t, pkg.SelectedRestaurant)
		assert.Equal(t, "名店", pkg.SelectedRestaurant.Candidate.Name)
		// 厳格条件を満たすのは1店のみなので代替候補は出ない
		assert.Empty(t, pkg.Alternatives)
	})

	t.Run("厳格条件を満たす店がなければ緩和条件(4.4/100)に落とす", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("良い店", 4.5, 200, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.False(t, pkg.Disabled)
		assert.Equal(t, "良い店", pkg.SelectedRestaurant.Candidate.Name)
	})

	t.Run("基準を満たす店がなければ無効化する", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("評価不足の店", 4.2, 50, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		require.NotNil(t, pkg.Reason)
		assert.Equal(t, "No qualifying restaurants (rating >= 4.4, reviews >= 100)", pkg.Reason.Message())
		// レストランが決まらなければ経路計算しない
		assert.Equal(t, 0, routing.callCount())
	})

	t.Run("降水確率20%超では屋外席のみの店を除外する", func(t *testing.T) {
		rainIn := in
		rainIn.Weather.PrecipitationProbability = 25.0

		outdoorOnly := testCandidate("テラス席の店", 4.9, 2000, loc, "restaurant")
		outdoorOnly.Attributes = []string{model.AttributeOutdoorSeating}
		indoor := testCandidate("屋内の店", 4.6, 600, loc, "restaurant")
		indoor.Attributes = []string{model.AttributeOutdoorSeating, model.AttributeIndoorSeating}

		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{outdoorOnly, indoor}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, rainIn)

		require.False(t, pkg.Disabled)
		assert.Equal(t, "屋内の店", pkg.SelectedRestaurant.Candidate.Name)
	})

	t.Run("代替候補は最大3件", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("店A", 4.6, 500, loc, "restaurant"),
			testCandidate("店B", 4.7, 600, loc, "restaurant"),
			testCandidate("店C", 4.8, 700, loc, "restaurant"),
			testCandidate("店D", 4.9, 800, loc, "restaurant"),
			testCandidate("店E", 4.9, 900, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.False(t, pkg.Disabled)
		assert.Len(t, pkg.Alternatives, 3)
	})
}

// TestFoodieStrategy_Routing はfood-firstの経路計算をテストする
func TestFoodieStrategy_Routing(t *testing.T) {
	ctx := context.Background()
	in := fairWeatherInput()
	loc := model.LatLng{Lat: 35.05, Lng: 135.05}

	t.Run("経路は選定後に2本だけ並行取得する", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("名店", 4.7, 600, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.False(t, pkg.Disabled)
		assert.Equal(t, 2, routing.callCount())
		require.NotNil(t, pkg.RouteToRestaurant)
		require.NotNil(t, pkg.RouteToDestination)
	})

	t.Run("経路取得失敗時はdisabledパッケージを返す", func(t *testing.T) {
		routing := &stubRoutingProvider{err: errors.New("directions API error")}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("名店", 4.7, 600, loc, "restaurant"),
		}}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		assert.Equal(t, "Route calculation failed", pkg.Reason.Message())
	})

	t.Run("検索失敗時は原因を区別したdisabledパッケージを返す", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{err: errors.New("places API error")}
		pkg := NewFoodieStrategy(routing, places).Optimize(ctx, in)

		require.True(t, pkg.Disabled)
		require.NotNil(t, pkg.Reason)
		assert.Equal(t, model.DisablePlacesSearchFailed, pkg.Reason.Code)
		assert.Equal(t, "Place search failed", pkg.Reason.Message())
	})

	t.Run("検索は中間地点周辺10km圏のレストラン", func(t *testing.T) {
		routing := &stubRoutingProvider{route: model.RoutePlan{DurationSeconds: 900}}
		places := &stubPlacesProvider{candidates: []*model.POICandidate{
			testCandidate("名店", 4.7, 600, loc, "restaurant"),
		}}
		NewFoodieStrategy(routing, places).Optimize(ctx, in)

		assert.Equal(t, 10000, places.lastQuery.RadiusMeters)
		assert.Equal(t, []string{"restaurant"}, places.lastQuery.Types)
		assert.Equal(t, 4.4, places.lastQuery.MinRating)
		assert.Equal(t, 100, places.lastQuery.MinReviews)
	})
}
