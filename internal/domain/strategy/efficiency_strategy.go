package strategy

import (
	"context"
	"log"
	"math"

	"Tabitomo-App/internal/domain/helper"
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// EfficiencyStrategy 最速ルートに質の高い立ち寄りを添えるモード
type EfficiencyStrategy struct {
	routing repository.RoutingProvider
	places  repository.PlacesProvider
}

// NewEfficiencyStrategy 新しいEfficiencyStrategyインスタンスを作成する
func NewEfficiencyStrategy(routing repository.RoutingProvider, places repository.PlacesProvider) *EfficiencyStrategy {
	return &EfficiencyStrategy{
		routing: routing,
		places:  places,
	}
}

// Optimize 最速ルートと立ち寄り候補からEfficiencyPackageを生成する
// コラボレータ障害は例外として伝播させず、必ずdisabledパッケージに変換する
func (s *EfficiencyStrategy) Optimize(ctx context.Context, in OptimizeInput) *model.EfficiencyPackage {
	route, err := s.routing.GetRoute(ctx, in.Origin, in.Destination)
	if err != nil {
		log.Printf("⚠️ efficiency: ルート取得に失敗: %v", err)
		return disabledEfficiency()
	}

	// ルート始点から500m以内の質の高いスポットを検索
	candidates, err := s.places.SearchNearby(ctx, repository.PlacesQuery{
		Location:     in.Origin,
		RadiusMeters: model.EfficiencySearchRadiusMeters,
		Types:        []string{"cafe", "restaurant", "gas_station"},
		MinRating:    model.EfficiencyMinRating,
	})
	if err != nil {
		log.Printf("⚠️ efficiency: スポット検索に失敗: %v", err)
		return disabledEfficiency()
	}

	stops := helper.TopStops(s.scoreCandidates(in.Origin, candidates), model.EfficiencyMaxStops)

	totalDuration := route.DurationSeconds + model.EfficiencyStopSeconds*len(stops)

	poiScore := helper.NormalizedPOIScore(stops)
	routeScore := routeQualityScore(route.DurationSeconds)
	combined := model.EfficiencyWeightPOI*poiScore +
		model.EfficiencyWeightRoute*routeScore +
		model.EfficiencyWeightWeather*in.Scores.Overall

	return &model.EfficiencyPackage{
		Mode:                 model.ModeEfficiency,
		Route:                route,
		Stops:                stops,
		TotalDurationSeconds: totalDuration,
		HazardAlert:          in.Scores.Overall < model.EfficiencyHazardThreshold,
		CombinedScore:        combined,
	}
}

// scoreCandidates 立ち寄り候補をスコアリングする
// 評価4.0未満はスコア0として除外、寄り道5分超も採用しない
func (s *EfficiencyStrategy) scoreCandidates(origin model.LatLng, candidates []*model.POICandidate) []model.ScoredStop {
	var stops []model.ScoredStop
	for _, c := range candidates {
		if c.Rating < model.EfficiencyMinRating {
			continue
		}

		detourMinutes := estimateDetourMinutes(origin, c.Location)
		if detourMinutes > model.EfficiencyMaxDetourMinutes {
			continue
		}

		typeBonus := 1.0
		if c.HasType("cafe", "fast_food") {
			typeBonus = model.EfficiencyTypeBonus
		}

		score := c.Rating *
			math.Log(1+float64(c.ReviewCount)) *
			math.Exp(-detourMinutes/model.EfficiencyMaxDetourMinutes) *
			typeBonus

		stops = append(stops, model.ScoredStop{
			Candidate:    *c,
			Score:        score,
			DetourMinute: detourMinutes,
		})
	}
	return stops
}

// estimateDetourMinutes ルート始点からの往復を時速30kmで見積もる
func estimateDetourMinutes(origin, location model.LatLng) float64 {
	roundTripKm := helper.DistanceKm(origin, location) * 2
	return roundTripKm / 30.0 * 60.0
}

func disabledEfficiency() *model.EfficiencyPackage {
	return &model.EfficiencyPackage{
		Mode:     model.ModeEfficiency,
		Disabled: true,
		Reason:   &model.DisableReason{Code: model.DisableRouteFailed},
	}
}
