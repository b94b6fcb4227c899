package usecase

import (
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
	"Tabitomo-App/internal/domain/service"
	"context"
	"fmt"
	"log"
	"time"
)

// interventionDedupTTL は同一介入の再通知を抑制する期間
const interventionDedupTTL = 30 * time.Minute

type InterventionUseCase interface {
	// CheckTrip は旅行コンテキストを評価し、必要な介入と次回チェック間隔を返す
	CheckTrip(ctx context.Context, trip *model.TripContext) (*model.InterventionResponse, error)
}

// interventionUseCaseImpl はInterventionUseCaseの実装
type interventionUseCaseImpl struct {
	monitor         *service.InterventionMonitor
	weatherProvider repository.WeatherProvider
	cache           repository.InterventionCache
}

// NewInterventionUseCase は新しいInterventionUseCaseインスタンスを作成する。
// cacheがnilの場合は重複排除を行わない。
func NewInterventionUseCase(
	monitor *service.InterventionMonitor,
	weatherProvider repository.WeatherProvider,
	cache repository.InterventionCache,
) InterventionUseCase {
	return &interventionUseCaseImpl{
		monitor:         monitor,
		weatherProvider: weatherProvider,
		cache:           cache,
	}
}

// CheckTrip は旅行コンテキストを評価し、必要な介入と次回チェック間隔を返す
func (u *interventionUseCaseImpl) CheckTrip(ctx context.Context, trip *model.TripContext) (*model.InterventionResponse, error) {
	log.Printf("🚀 介入チェック開始 (目的地: %s)", trip.Destination.Name)

	// 現在の天候が未指定の場合はプロバイダーから取得する
	if trip.CurrentWeather == nil && trip.Destination.Location != nil {
		snapshot, err := u.weatherProvider.GetCurrent(ctx, *trip.Destination.Location)
		if err != nil {
			return nil, fmt.Errorf("天候スナップショットの取得に失敗: %w", err)
		}
		trip.CurrentWeather = snapshot
	}

	interventions := u.monitor.CheckInterventions(ctx, trip)
	interventions = u.dedupInterventions(ctx, trip, interventions)

	log.Printf("✅ 介入チェック完了 (介入数: %d)", len(interventions))
	resp := &model.InterventionResponse{
		Interventions: interventions,
		CheckInterval: checkInterval(interventions),
	}
	if trip.CurrentWeather != nil {
		resp.WeatherSnapshot = *trip.CurrentWeather
	}
	return resp, nil
}

// dedupInterventions は最近通知済みの介入を除外する。キャッシュ障害時は除外せず通す。
func (u *interventionUseCaseImpl) dedupInterventions(ctx context.Context, trip *model.TripContext, interventions []model.Intervention) []model.Intervention {
	if u.cache == nil {
		return interventions
	}

	kept := make([]model.Intervention, 0, len(interventions))
	for _, intervention := range interventions {
		key := fmt.Sprintf("%s:%s", trip.Destination.Name, intervention.Type)

		seen, err := u.cache.SeenRecently(ctx, key)
		if err != nil {
			log.Printf("⚠️ 介入キャッシュの参照に失敗 (key: %s): %v", key, err)
			kept = append(kept, intervention)
			continue
		}
		if seen {
			continue
		}

		if err := u.cache.MarkSeen(ctx, key, interventionDedupTTL); err != nil {
			log.Printf("⚠️ 介入キャッシュの記録に失敗 (key: %s): %v", key, err)
		}
		kept = append(kept, intervention)
	}
	return kept
}

// checkInterval は介入の緊急度に応じた次回チェック間隔（秒）を返す
func checkInterval(interventions []model.Intervention) int {
	for _, intervention := range interventions {
		if intervention.Severity == model.SeverityUrgent {
			return model.CheckIntervalUrgentSec
		}
	}
	if len(interventions) > 0 {
		return model.CheckIntervalWarningSec
	}
	return model.CheckIntervalDefaultSec
}
