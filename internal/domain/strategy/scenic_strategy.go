package strategy

import (
	"context"
	"fmt"
	"log"
	"math"

	"Tabitomo-App/internal/domain/helper"
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// ScenicStrategy 景観を優先するモード
// 天候ゲーティングを経路呼び出しの前に評価してフェイルファストする
type ScenicStrategy struct {
	routing repository.RoutingProvider
	places  repository.PlacesProvider
}

// NewScenicStrategy 新しいScenicStrategyインスタンスを作成する
func NewScenicStrategy(routing repository.RoutingProvider, places repository.PlacesProvider) *ScenicStrategy {
	return &ScenicStrategy{
		routing: routing,
		places:  places,
	}
}

// Optimize 絶景スポット付きのScenicPackageを生成する
func (s *ScenicStrategy) Optimize(ctx context.Context, in OptimizeInput) *model.ScenicPackage {
	// ゲーティング: 視界不足 → 霧で景観が楽しめないため無効化
	if in.Weather.VisibilityKm < model.ScenicMinVisibilityKm {
		return disabledScenic(&model.DisableReason{
			Code:         model.DisableLowVisibility,
			VisibilityKm: in.Weather.VisibilityKm,
		})
	}
	// ゲーティング: 降水確率が高い → 雨天で無効化
	if in.Weather.PrecipitationProbability > model.ScenicMaxPrecipitationPct {
		return disabledScenic(&model.DisableReason{
			Code:             model.DisableHighRainChance,
			PrecipitationPct: in.Weather.PrecipitationProbability,
		})
	}

	// 最速ルートを所要時間のベースラインとして利用する
	baseRoute, err := s.routing.GetRoute(ctx, in.Origin, in.Destination)
	if err != nil {
		log.Printf("⚠️ scenic: ルート取得に失敗: %v", err)
		return &model.ScenicPackage{
			Mode:     model.ModeScenic,
			Disabled: true,
			Reason:   &model.DisableReason{Code: model.DisableRouteFailed},
		}
	}

	// 景観ルートは固定のインフレ率で見積もる（時間+20%、距離+15%）
	scenicRoute := &model.RoutePlan{
		Polyline:            baseRoute.Polyline,
		DurationSeconds:     int(math.Round(float64(baseRoute.DurationSeconds) * model.ScenicDurationMultiplier)),
		DistanceMeters:      int(math.Round(float64(baseRoute.DistanceMeters) * model.ScenicDistanceMultiplier)),
		TrafficDelaySeconds: baseRoute.TrafficDelaySeconds,
	}
	durationIncrease := fmt.Sprintf("%d%%", int(math.Round((model.ScenicDurationMultiplier-1)*100)))

	// 中間地点の周辺から絶景スポットを検索
	midpoint := helper.Midpoint(in.Origin, in.Destination)
	candidates, err := s.places.SearchNearby(ctx, repository.PlacesQuery{
		Location:     midpoint,
		RadiusMeters: model.ScenicSearchRadiusMeters,
		Types:        []string{"park", "tourist_attraction", "natural_feature", "point_of_interest"},
		Keyword:      model.ScenicSearchKeyword,
	})
	if err != nil {
		log.Printf("⚠️ scenic: スポット検索に失敗: %v", err)
		return &model.ScenicPackage{
			Mode:     model.ModeScenic,
			Disabled: true,
			Reason:   &model.DisableReason{Code: model.DisablePlacesSearchFailed},
		}
	}

	viewPoints := helper.TopStops(s.scoreCandidates(candidates, in.Weather.VisibilityKm), model.ScenicMaxStops)

	poiScore := helper.NormalizedPOIScore(viewPoints)
	routeScore := routeQualityScore(scenicRoute.DurationSeconds)
	combined := model.ScenicWeightPOI*poiScore +
		model.ScenicWeightRoute*routeScore +
		model.ScenicWeightWeather*in.Scores.Overall

	return &model.ScenicPackage{
		Mode:             model.ModeScenic,
		Route:            scenicRoute,
		ViewPoints:       viewPoints,
		ScenicScore:      model.ScenicFixedScore,
		DurationIncrease: durationIncrease,
		CombinedScore:    combined,
	}
}

// scoreCandidates 絶景スポット候補をスコアリングする
// 属性ボーナスは加算で重なり、視界ボーナスは乗算で効く
func (s *ScenicStrategy) scoreCandidates(candidates []*model.POICandidate, visibilityKm float64) []model.ScoredStop {
	visibilityBonus := math.Min(visibilityKm/10.0, model.ScenicMaxVisibilityBonus)

	var stops []model.ScoredStop
	for _, c := range candidates {
		attributeBonus := 1.0
		if c.HasAttribute(model.AttributeView) {
			attributeBonus += model.ScenicViewAttributeBonus
		}
		if c.HasAttribute(model.AttributeOutdoorSeating) {
			attributeBonus += model.ScenicOutdoorSeatingBonus
		}
		if c.HasType("park") {
			attributeBonus += model.ScenicParkTypeBonus
		}

		score := c.Rating * math.Log(1+float64(c.ReviewCount)) * attributeBonus * visibilityBonus

		stops = append(stops, model.ScoredStop{
			Candidate: *c,
			Score:     score,
		})
	}
	return stops
}

// disabledScenic ゲーティングによる無効化パッケージを生成する
// ゲーティングは設計上の結果であり、efficiencyへのフォールバックを案内する
func disabledScenic(reason *model.DisableReason) *model.ScenicPackage {
	return &model.ScenicPackage{
		Mode:             model.ModeScenic,
		Disabled:         true,
		Reason:           reason,
		DowngradeWarning: true,
		FallbackMode:     model.ModeEfficiency,
	}
}
