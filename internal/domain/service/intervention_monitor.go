package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"Tabitomo-App/internal/domain/helper"
	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// InterventionMonitor 進行中トリップの状況から割り込み警告を判定するステートレスなサービス
// 3つのトリガーは互いに独立で、それぞれ0または1件の介入を返す
type InterventionMonitor struct {
	places repository.PlacesProvider
	newID  func() string
}

// NewInterventionMonitor 新しいInterventionMonitorインスタンスを作成する
func NewInterventionMonitor(places repository.PlacesProvider) *InterventionMonitor {
	return &InterventionMonitor{
		places: places,
		newID:  uuid.NewString,
	}
}

// CheckInterventions 3つのトリガーを評価して介入の一覧を返す
// ネットワーク呼び出しは屋内代替スポット検索のみで、他は安価な純粋計算
func (m *InterventionMonitor) CheckInterventions(ctx context.Context, trip *model.TripContext) []model.Intervention {
	interventions := []model.Intervention{}

	if iv := m.checkWeatherOutdoorConflict(ctx, trip); iv != nil {
		interventions = append(interventions, *iv)
	}
	if iv := m.checkTrafficDelay(trip); iv != nil {
		interventions = append(interventions, *iv)
	}
	if iv := m.checkWeatherDegradation(trip); iv != nil {
		interventions = append(interventions, *iv)
	}

	return interventions
}

// checkWeatherOutdoorConflict 屋外の目的地と悪天候の衝突を検出する
func (m *InterventionMonitor) checkWeatherOutdoorConflict(ctx context.Context, trip *model.TripContext) *model.Intervention {
	if trip.Destination == nil || !trip.Destination.IsOutdoor || trip.CurrentWeather == nil {
		return nil
	}
	w := trip.CurrentWeather

	var reasoning []string
	if w.PrecipitationProbability > model.OutdoorPrecipThreshold {
		reasoning = append(reasoning, fmt.Sprintf("Precipitation probability %g%% exceeds %g%%", w.PrecipitationProbability, model.OutdoorPrecipThreshold))
	}
	if w.VisibilityKm < model.OutdoorVisibilityKm {
		reasoning = append(reasoning, fmt.Sprintf("Visibility %gkm is below %gkm", w.VisibilityKm, model.OutdoorVisibilityKm))
	}
	if w.WindSpeedKmh > model.OutdoorWindKmh {
		reasoning = append(reasoning, fmt.Sprintf("Wind speed %gkm/h exceeds %gkm/h", w.WindSpeedKmh, model.OutdoorWindKmh))
	}
	if len(reasoning) == 0 {
		return nil
	}

	severity := model.SeverityWarning
	if w.PrecipitationProbability > model.OutdoorUrgentPrecipPct || w.VisibilityKm < model.OutdoorUrgentVisibilityKm {
		severity = model.SeverityUrgent
	}

	name := trip.Destination.Name
	if name == "" {
		name = "your destination"
	}

	return &model.Intervention{
		ID:          m.newID(),
		Type:        model.InterventionWeatherOutdoorConflict,
		Severity:    severity,
		Title:       "Weather conflict at outdoor destination",
		Message:     fmt.Sprintf("Conditions are unfavorable for %s. Consider an indoor alternative.", name),
		Reasoning:   reasoning,
		Suggestions: m.findIndoorAlternatives(ctx, trip.Destination),
		Status:      model.StatusPending,
	}
}

// findIndoorAlternatives 目的地周辺の屋内代替スポットを最大3件検索する
// 検索失敗はこの介入の提案が欠けるだけで、介入そのものは返す（部分失敗の許容）
func (m *InterventionMonitor) findIndoorAlternatives(ctx context.Context, destination *model.TripDestination) []model.Suggestion {
	if destination.Location == nil {
		return nil
	}
	candidates, err := m.places.SearchNearby(ctx, repository.PlacesQuery{
		Location:     *destination.Location,
		RadiusMeters: model.IndoorSearchRadiusMeters,
		Types:        []string{"museum"},
		Keyword:      model.IndoorSearchKeyword,
	})
	if err != nil {
		log.Printf("⚠️ 屋内代替スポット検索に失敗: %v", err)
		return nil
	}

	// 最高評価の候補を先頭の提案にする
	best := helper.FindHighestRated(candidates)

	var suggestions []model.Suggestion
	if best != nil {
		suggestions = append(suggestions, model.Suggestion{
			Type:  model.SuggestionAlternativePlace,
			Title: best.Name,
			Place: best,
		})
	}
	for _, c := range candidates {
		if c == best {
			continue
		}
		if len(suggestions) >= model.IndoorMaxAlternatives {
			break
		}
		suggestions = append(suggestions, model.Suggestion{
			Type:  model.SuggestionAlternativePlace,
			Title: c.Name,
			Place: c,
		})
	}
	return suggestions
}

// checkTrafficDelay 30分を超えるライブ渋滞遅延を検出する
func (m *InterventionMonitor) checkTrafficDelay(trip *model.TripContext) *model.Intervention {
	delay := trip.LiveTrafficDelay
	if delay <= model.TrafficDelayWarningSec {
		return nil
	}

	severity := model.SeverityWarning
	if delay > model.TrafficDelayUrgentSec {
		severity = model.SeverityUrgent
	}

	delayMinutes := delay / 60
	return &model.Intervention{
		ID:       m.newID(),
		Type:     model.InterventionTrafficDelay,
		Severity: severity,
		Title:    "Heavy traffic ahead",
		Message:  fmt.Sprintf("Current traffic adds about %d minutes to your trip", delayMinutes),
		Reasoning: []string{
			fmt.Sprintf("Live traffic delay of %d minutes exceeds the %d minute threshold", delayMinutes, model.TrafficDelayWarningSec/60),
		},
		Suggestions: []model.Suggestion{
			{Type: model.SuggestionRouteChange, Title: "Find Faster Route"},
		},
		Status: model.StatusPending,
	}
}

// checkWeatherDegradation 前回スナップショットからの天候悪化を検出する
// degradation = max(Δprecip/100, (prevVis-currVis)/prevVis, Δwind/50)
func (m *InterventionMonitor) checkWeatherDegradation(trip *model.TripContext) *model.Intervention {
	prev := trip.PreviousWeather
	curr := trip.CurrentWeather
	if prev == nil || curr == nil {
		return nil
	}

	precipDelta := curr.PrecipitationProbability - prev.PrecipitationProbability
	visibilityDrop := prev.VisibilityKm - curr.VisibilityKm
	windDelta := curr.WindSpeedKmh - prev.WindSpeedKmh

	degradation := precipDelta / 100.0
	if prev.VisibilityKm > 0 {
		if v := visibilityDrop / prev.VisibilityKm; v > degradation {
			degradation = v
		}
	}
	if w := windDelta / 50.0; w > degradation {
		degradation = w
	}

	if degradation <= model.DegradationThreshold {
		return nil
	}

	severity := model.SeverityWarning
	if degradation > model.DegradationUrgent {
		severity = model.SeverityUrgent
	}

	// 顕著に悪化したサブ要因だけを理由に列挙する
	var reasoning []string
	if precipDelta >= model.DegradationPrecipMargin {
		reasoning = append(reasoning, fmt.Sprintf("Precipitation probability rose by %.0f points", precipDelta))
	}
	if visibilityDrop >= model.DegradationVisibilityKm {
		reasoning = append(reasoning, fmt.Sprintf("Visibility dropped by %.1fkm", visibilityDrop))
	}
	if windDelta >= model.DegradationWindKmh {
		reasoning = append(reasoning, fmt.Sprintf("Wind speed increased by %.0fkm/h", windDelta))
	}

	return &model.Intervention{
		ID:        m.newID(),
		Type:      model.InterventionWeatherDegradation,
		Severity:  severity,
		Title:     "Weather is degrading",
		Message:   "Conditions have worsened noticeably since the trip started",
		Reasoning: reasoning,
		Suggestions: []model.Suggestion{
			{Type: model.SuggestionTimeAdjustment, Title: "Consider Adjusting Schedule"},
		},
		Status: model.StatusPending,
	}
}
