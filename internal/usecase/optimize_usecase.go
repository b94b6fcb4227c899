package usecase

import (
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/service"
	"context"
	"fmt"
	"log"
)

type PlannerOptimizeUseCase interface {
	// Optimize は出発地・目的地から3モードの提案パッケージを生成してレスポンスを返す
	Optimize(ctx context.Context, req *model.OptimizeRequest) (*model.OptimizeResponse, error)
}

// plannerOptimizeUseCaseImpl はPlannerOptimizeUseCaseの実装
type plannerOptimizeUseCaseImpl struct {
	optimizeService service.TripOptimizeService
}

// NewPlannerOptimizeUseCase は新しいPlannerOptimizeUseCaseインスタンスを作成
func NewPlannerOptimizeUseCase(optimizeService service.TripOptimizeService) PlannerOptimizeUseCase {
	return &plannerOptimizeUseCaseImpl{optimizeService: optimizeService}
}

// Optimize は出発地・目的地から3モードの提案パッケージを生成してレスポンスを返す
func (u *plannerOptimizeUseCaseImpl) Optimize(ctx context.Context, req *model.OptimizeRequest) (*model.OptimizeResponse, error) {
	log.Printf("🚀 ルート最適化開始 (出発地: %.4f,%.4f → 目的地: %.4f,%.4f)",
		req.Origin.Lat, req.Origin.Lng, req.Destination.Lat, req.Destination.Lng)

	result, err := u.optimizeService.Optimize(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("ルート最適化に失敗: %w", err)
	}

	log.Printf("✅ ルート最適化完了 (推奨モード: %s)", model.GetModeJapaneseName(result.Recommended))
	return &model.OptimizeResponse{OK: true, Result: result}, nil
}
