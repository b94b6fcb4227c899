package service

import (
	"fmt"
	"time"

	"Tabitomo-App/internal/domain/model"
)

// Recommend 3モードのパッケージと天候スコアから推薦モードと理由を決定する
// 各モードは望ましさ0.5から始まり、無効化されたモードは0に落とす
// 同点の場合は固定の優先順位（efficiency > foodie > scenic）で決定的に選ぶ
func Recommend(packages model.ModePackages, scores model.WeatherScores, prefs *model.UserPrefs, localTime time.Time) (string, string) {
	desirability := map[string]float64{
		model.ModeEfficiency: model.BaseDesirability,
		model.ModeScenic:     model.BaseDesirability,
		model.ModeFoodie:     model.BaseDesirability,
	}

	// 無効化されたモードは推薦対象から外す
	if isDisabled(packages, model.ModeEfficiency) {
		desirability[model.ModeEfficiency] = 0
	}
	if isDisabled(packages, model.ModeScenic) {
		desirability[model.ModeScenic] = 0
	}
	if isDisabled(packages, model.ModeFoodie) {
		desirability[model.ModeFoodie] = 0
	}

	// 加点は独立していて、複数が同時に適用されうる
	if scores.Overall >= model.ScenicWeatherThreshold {
		desirability[model.ModeScenic] += model.ScenicWeatherBonus
	}
	if scores.Overall < model.EfficiencyWeatherCeiling {
		desirability[model.ModeEfficiency] += model.EfficiencyWeatherBonus
	}
	mealTime := model.IsMealHour(localTime.Hour())
	if mealTime {
		desirability[model.ModeFoodie] += model.FoodieMealTimeBonus
	}
	if prefs != nil {
		if prefs.PreferScenic {
			desirability[model.ModeScenic] += model.UserPreferenceBonus
		}
		if prefs.PreferCulinary {
			desirability[model.ModeFoodie] += model.UserPreferenceBonus
		}
		if prefs.TimeConstrained {
			desirability[model.ModeEfficiency] += model.UserPreferenceBonus
		}
	}

	recommended := argMaxMode(desirability)

	// 推薦モード自身が無効な場合は、有効なモードに置き換えて理由で説明する
	if isDisabled(packages, recommended) {
		substitute := bestEnabledMode(packages, desirability)
		if substitute == "" {
			return model.ModeEfficiency, "All modes are currently unavailable"
		}
		return substitute, fmt.Sprintf("%s mode unavailable (%s), recommending %s instead",
			recommended, disableMessage(packages, recommended), substitute)
	}

	return recommended, buildReason(recommended, scores, mealTime)
}

// argMaxMode 望ましさが最大のモードを返す
// GetAllModes()の順序がタイブレークの優先順位を兼ねる
func argMaxMode(desirability map[string]float64) string {
	best := ""
	bestScore := -1.0
	for _, mode := range model.GetAllModes() {
		if desirability[mode] > bestScore {
			best = mode
			bestScore = desirability[mode]
		}
	}
	return best
}

// bestEnabledMode 有効なモードのうち最も望ましいものを返す（なければ空文字）
func bestEnabledMode(packages model.ModePackages, desirability map[string]float64) string {
	best := ""
	bestScore := -1.0
	for _, mode := range model.GetAllModes() {
		if isDisabled(packages, mode) {
			continue
		}
		if desirability[mode] > bestScore {
			best = mode
			bestScore = desirability[mode]
		}
	}
	return best
}

// buildReason 推薦の決め手となった要因からテンプレート文を生成する
func buildReason(recommended string, scores model.WeatherScores, mealTime bool) string {
	switch {
	case recommended == model.ModeScenic && scores.Overall >= model.ScenicWeatherThreshold:
		return "Excellent visibility and low rain chance favor the scenic route"
	case recommended == model.ModeEfficiency && scores.Overall < model.EfficiencyWeatherCeiling:
		return "Weather conditions favor the fastest route"
	case recommended == model.ModeFoodie && mealTime:
		return "It's meal time, a great moment for a food-first route"
	default:
		return "Recommended based on current conditions"
	}
}

func isDisabled(packages model.ModePackages, mode string) bool {
	switch mode {
	case model.ModeEfficiency:
		return packages.Efficiency == nil || packages.Efficiency.Disabled
	case model.ModeScenic:
		return packages.Scenic == nil || packages.Scenic.Disabled
	case model.ModeFoodie:
		return packages.Foodie == nil || packages.Foodie.Disabled
	default:
		return true
	}
}

func disableMessage(packages model.ModePackages, mode string) string {
	var reason *model.DisableReason
	switch mode {
	case model.ModeEfficiency:
		if packages.Efficiency != nil {
			reason = packages.Efficiency.Reason
		}
	case model.ModeScenic:
		if packages.Scenic != nil {
			reason = packages.Scenic.Reason
		}
	case model.ModeFoodie:
		if packages.Foodie != nil {
			reason = packages.Foodie.Reason
		}
	}
	if reason == nil {
		return "unavailable"
	}
	return reason.Message()
}
