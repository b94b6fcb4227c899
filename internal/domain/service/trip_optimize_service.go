package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
	"Tabitomo-App/internal/domain/strategy"
)

// TripOptimizeService 3モードの最適化をオーケストレーションする単一のサービス
type TripOptimizeService interface {
	Optimize(ctx context.Context, req *model.OptimizeRequest) (*model.OptimizationResult, error)
}

type tripOptimizeService struct {
	weatherProvider repository.WeatherProvider
	efficiency      *strategy.EfficiencyStrategy
	scenic          *strategy.ScenicStrategy
	foodie          *strategy.FoodieStrategy
	now             func() time.Time
}

// NewTripOptimizeService 各Strategyにプロバイダを注入してサービスを作成する
func NewTripOptimizeService(
	weather repository.WeatherProvider,
	routing repository.RoutingProvider,
	places repository.PlacesProvider,
) TripOptimizeService {
	return &tripOptimizeService{
		weatherProvider: weather,
		efficiency:      strategy.NewEfficiencyStrategy(routing, places),
		scenic:          strategy.NewScenicStrategy(routing, places),
		foodie:          strategy.NewFoodieStrategy(routing, places),
		now:             time.Now,
	}
}

// Optimize 天候スナップショットを1回だけ取得し、3モードを並行評価して結果を組み立てる
// 天候取得の失敗はリクエスト全体を中断する唯一のケース
func (s *tripOptimizeService) Optimize(ctx context.Context, req *model.OptimizeRequest) (*model.OptimizationResult, error) {
	snapshot, err := s.weatherProvider.GetCurrent(ctx, *req.Origin)
	if err != nil {
		return nil, fmt.Errorf("天候スナップショットの取得に失敗: %w", err)
	}

	scores := ScoreWeather(*snapshot)

	in := strategy.OptimizeInput{
		Origin:      *req.Origin,
		Destination: *req.Destination,
		Weather:     *snapshot,
		Scores:      scores,
	}

	log.Printf("🚀 3モード並行最適化開始 (overall=%.2f)", scores.Overall)
	start := time.Now()

	// 各モードは互いに独立した純粋な計算で、それぞれがプロバイダ呼び出しを行う
	// ため並行で実行する。1モードの失敗は他モードをキャンセルも破壊もしない
	// （各Strategyが自分のエラーを捕捉してdisabledパッケージに変換する）
	var packages model.ModePackages
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		packages.Efficiency = s.efficiency.Optimize(ctx, in)
	}()
	go func() {
		defer wg.Done()
		packages.Scenic = s.scenic.Optimize(ctx, in)
	}()
	go func() {
		defer wg.Done()
		packages.Foodie = s.foodie.Optimize(ctx, in)
	}()
	wg.Wait()

	log.Printf("✅ 3モード並行最適化完了: %v", time.Since(start))

	recommended, reason := Recommend(packages, scores, req.UserPrefs, s.now())

	return &model.OptimizationResult{
		Modes:           packages,
		Recommended:     recommended,
		RecommendedName: model.GetModeJapaneseName(recommended),
		Reason:          reason,
		WeatherInsights: model.WeatherInsights{
			Snapshot: *snapshot,
			Scores:   scores,
			Alerts:   BuildWeatherAlerts(*snapshot),
		},
		DisabledModes: collectDisabledModes(packages),
	}, nil
}

// collectDisabledModes 無効化されたモードと表示用の理由を列挙する
func collectDisabledModes(packages model.ModePackages) []model.DisabledMode {
	disabled := []model.DisabledMode{}
	if packages.Efficiency != nil && packages.Efficiency.Disabled && packages.Efficiency.Reason != nil {
		disabled = append(disabled, model.DisabledMode{Mode: model.ModeEfficiency, Reason: packages.Efficiency.Reason.Message()})
	}
	if packages.Scenic != nil && packages.Scenic.Disabled && packages.Scenic.Reason != nil {
		disabled = append(disabled, model.DisabledMode{Mode: model.ModeScenic, Reason: packages.Scenic.Reason.Message()})
	}
	if packages.Foodie != nil && packages.Foodie.Disabled && packages.Foodie.Reason != nil {
		disabled = append(disabled, model.DisabledMode{Mode: model.ModeFoodie, Reason: packages.Foodie.Reason.Message()})
	}
	return disabled
}
