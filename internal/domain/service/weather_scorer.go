package service

import (
	"Tabitomo-App/internal/domain/model"
)

// ScoreWeather 天候スナップショットを正規化済みスコアに変換する純粋関数
// 各サブスコアは区分線形のルックアップテーブルで決まり、必ず[0,1]に収まる
func ScoreWeather(snapshot model.WeatherSnapshot) model.WeatherScores {
	scores := model.WeatherScores{
		Precipitation: scorePrecipitation(snapshot.PrecipitationProbability),
		Visibility:    scoreVisibility(snapshot.VisibilityKm),
		Temperature:   scoreTemperature(snapshot.TemperatureC),
		Wind:          scoreWind(snapshot.WindSpeedKmh),
	}
	scores.Overall = model.WeatherWeightPrecipitation*scores.Precipitation +
		model.WeatherWeightVisibility*scores.Visibility +
		model.WeatherWeightTemperature*scores.Temperature +
		model.WeatherWeightWind*scores.Wind
	return scores
}

// scorePrecipitation 降水確率(%)のスコア
func scorePrecipitation(probability float64) float64 {
	switch {
	case probability <= 10:
		return 1.0
	case probability <= 30:
		return 0.8
	case probability <= 50:
		return 0.5
	case probability <= 70:
		return 0.2
	default:
		return 0.0
	}
}

// scoreVisibility 視界(km)のスコア
func scoreVisibility(visibilityKm float64) float64 {
	switch {
	case visibilityKm >= 10:
		return 1.0
	case visibilityKm >= 5:
		return 0.8
	case visibilityKm >= 2:
		return 0.5
	case visibilityKm >= 1:
		return 0.2
	default:
		return 0.0
	}
}

// scoreTemperature 気温(℃)のスコア
func scoreTemperature(tempC float64) float64 {
	switch {
	case tempC >= 18 && tempC <= 26:
		return 1.0
	case tempC >= 14 && tempC <= 30:
		return 0.8
	case tempC >= 8 && tempC <= 35:
		return 0.5
	default:
		return 0.3
	}
}

// scoreWind 風速(km/h)のスコア
func scoreWind(windKmh float64) float64 {
	switch {
	case windKmh <= 15:
		return 1.0
	case windKmh <= 30:
		return 0.7
	case windKmh <= 50:
		return 0.4
	default:
		return 0.2
	}
}

// BuildWeatherAlerts レスポンスに含める天候アラートを生成する
func BuildWeatherAlerts(snapshot model.WeatherSnapshot) []string {
	alerts := []string{}
	if snapshot.PrecipitationProbability > 50 {
		alerts = append(alerts, "High chance of rain")
	}
	if snapshot.VisibilityKm < 2 {
		alerts = append(alerts, "Very low visibility")
	}
	if snapshot.WindSpeedKmh > 50 {
		alerts = append(alerts, "Strong winds")
	}
	if snapshot.TemperatureC < 0 || snapshot.TemperatureC > 35 {
		alerts = append(alerts, "Extreme temperature")
	}
	return alerts
}
