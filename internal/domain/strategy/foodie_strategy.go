package strategy

import (
	"context"
	"log"
	"math"
	"sync"

	"Tabitomo-App/internal/domain/helper"
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// FoodieStrategy 食事処を起点にルートを組み立てるモード
// 経路計算はレストラン選定の「後」に行う（food-first）
type FoodieStrategy struct {
	routing repository.RoutingProvider
	places  repository.PlacesProvider
}

// NewFoodieStrategy 新しいFoodieStrategyインスタンスを作成する
func NewFoodieStrategy(routing repository.RoutingProvider, places repository.PlacesProvider) *FoodieStrategy {
	return &FoodieStrategy{
		routing: routing,
		places:  places,
	}
}

// Optimize レストラン選定→経路計算の順でFoodiePackageを生成する
func (s *FoodieStrategy) Optimize(ctx context.Context, in OptimizeInput) *model.FoodiePackage {
	// Step 1: 中間地点の周辺10km圏からレストランを検索
	midpoint := helper.Midpoint(in.Origin, in.Destination)
	candidates, err := s.places.SearchNearby(ctx, repository.PlacesQuery{
		Location:     midpoint,
		RadiusMeters: model.FoodieSearchRadiusMeters,
		Types:        []string{"restaurant"},
		MinRating:    model.FoodieMinRating,
		MinReviews:   model.FoodieMinReviews,
	})
	if err != nil {
		log.Printf("⚠️ foodie: レストラン検索に失敗: %v", err)
		return disabledFoodie(&model.DisableReason{Code: model.DisablePlacesSearchFailed})
	}

	// Step 2: 降水確率が高い場合は屋外席のみの店を除外
	if in.Weather.PrecipitationProbability > model.FoodieRainFilterPct {
		candidates = removeOutdoorOnly(candidates)
	}

	// Step 3: 厳格条件 → ダメなら緩和条件の2段階で絞り込む
	qualified := helper.FilterByQuality(candidates, model.FoodieStrictMinRating, model.FoodieStrictMinReviews)
	if len(qualified) == 0 {
		qualified = helper.FilterByQuality(candidates, model.FoodieMinRating, model.FoodieMinReviews)
	}
	if len(qualified) == 0 {
		return disabledFoodie(&model.DisableReason{Code: model.DisableNoQualifyingRestaurant})
	}

	// Step 4: スコアリングして最高得点の1店を選ぶ
	scored := helper.TopStops(s.scoreCandidates(qualified), len(qualified))
	selected := scored[0]

	var alternatives []model.RestaurantAlternative
	for _, alt := range scored[1:] {
		if len(alternatives) >= model.FoodieMaxAlternatives {
			break
		}
		alternatives = append(alternatives, model.RestaurantAlternative{
			Name:   alt.Candidate.Name,
			Rating: alt.Candidate.Rating,
			Score:  alt.Score,
		})
	}

	// Step 5: ここで初めて2本のルートを並行取得する
	// （出発地→レストラン、レストラン→目的地は互いに独立）
	toRestaurant, toDestination, err := s.fetchLegsInParallel(ctx, in.Origin, selected.Candidate.Location, in.Destination)
	if err != nil {
		log.Printf("⚠️ foodie: ルート取得に失敗: %v", err)
		return disabledFoodie(&model.DisableReason{Code: model.DisableRouteFailed})
	}

	poiScore := math.Min(1.0, selected.Score/model.POIScoreNormalizer)
	routeScore := routeQualityScore(toRestaurant.DurationSeconds + toDestination.DurationSeconds)
	combined := model.FoodieWeightPOI*poiScore +
		model.FoodieWeightRoute*routeScore +
		model.FoodieWeightWeather*in.Scores.Overall

	return &model.FoodiePackage{
		Mode:               model.ModeFoodie,
		SelectedRestaurant: &selected,
		Alternatives:       alternatives,
		RouteToRestaurant:  toRestaurant,
		RouteToDestination: toDestination,
		CombinedScore:      combined,
	}
}

// legResult 並行ルート取得の結果
type legResult struct {
	index int
	route *model.RoutePlan
	err   error
}

// fetchLegsInParallel 出発地→レストラン、レストラン→目的地の2本を並行で取得する
func (s *FoodieStrategy) fetchLegsInParallel(ctx context.Context, origin, restaurant, destination model.LatLng) (*model.RoutePlan, *model.RoutePlan, error) {
	legs := [][2]model.LatLng{
		{origin, restaurant},
		{restaurant, destination},
	}

	resultsChan := make(chan legResult, len(legs))
	var wg sync.WaitGroup

	for i, leg := range legs {
		wg.Add(1)
		go func(idx int, from, to model.LatLng) {
			defer wg.Done()
			route, err := s.routing.GetRoute(ctx, from, to)
			resultsChan <- legResult{index: idx, route: route, err: err}
		}(i, leg[0], leg[1])
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	routes := make([]*model.RoutePlan, len(legs))
	for result := range resultsChan {
		if result.err != nil {
			return nil, nil, result.err
		}
		routes[result.index] = result.route
	}

	return routes[0], routes[1], nil
}

// scoreCandidates レストラン候補をスコアリングする
// 高評価・高レビュー数の店が乗算ボーナスで強く押し上げられる
func (s *FoodieStrategy) scoreCandidates(candidates []*model.POICandidate) []model.ScoredStop {
	var stops []model.ScoredStop
	for _, c := range candidates {
		ratingBonus := 1.0
		switch {
		case c.Rating >= 4.8:
			ratingBonus = model.FoodieHighRatingBonus
		case c.Rating >= 4.6:
			ratingBonus = model.FoodieGoodRatingBonus
		}

		volumeBonus := 1.0
		switch {
		case c.ReviewCount >= 1000:
			volumeBonus = model.FoodieHighVolumeBonus
		case c.ReviewCount >= 500:
			volumeBonus = model.FoodieGoodVolumeBonus
		}

		score := c.Rating *
			math.Pow(math.Log(1+float64(c.ReviewCount)), 1.5) *
			ratingBonus *
			volumeBonus

		stops = append(stops, model.ScoredStop{
			Candidate: *c,
			Score:     score,
		})
	}
	return stops
}

// removeOutdoorOnly 屋外席しかない店を除外する（雨天対策）
func removeOutdoorOnly(candidates []*model.POICandidate) []*model.POICandidate {
	var filtered []*model.POICandidate
	for _, c := range candidates {
		if c.HasAttribute(model.AttributeOutdoorSeating) && !c.HasAttribute(model.AttributeIndoorSeating) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

func disabledFoodie(reason *model.DisableReason) *model.FoodiePackage {
	return &model.FoodiePackage{
		Mode:     model.ModeFoodie,
		Disabled: true,
		Reason:   reason,
	}
}
