package model

// WeatherSnapshot 現在の天候を表す読み取り専用の値
// 最適化リクエストごとに1回だけ取得し、全モードで共有する
type WeatherSnapshot struct {
	TemperatureC             float64 `json:"temperature_c"`             // 気温（摂氏）
	PrecipitationProbability float64 `json:"precipitation_probability"` // 降水確率（0〜100）
	VisibilityKm             float64 `json:"visibility_km"`             // 視界（km）
	WindSpeedKmh             float64 `json:"wind_speed_kmh"`            // 風速（km/h）
	CloudCover               float64 `json:"cloud_cover"`               // 雲量（0〜100）
}

// WeatherScores 天候の適性を表す正規化済みスコア
// 各サブスコアとoverallは必ず[0,1]の範囲に収まる
type WeatherScores struct {
	Precipitation float64 `json:"precipitation"`
	Visibility    float64 `json:"visibility"`
	Temperature   float64 `json:"temperature"`
	Wind          float64 `json:"wind"`
	Overall       float64 `json:"overall"` // 重み付き合計（0.4/0.3/0.2/0.1）
}

// WeatherInsights レスポンスに含める天候情報のまとめ
type WeatherInsights struct {
	Snapshot WeatherSnapshot `json:"snapshot"`
	Scores   WeatherScores   `json:"scores"`
	Alerts   []string        `json:"alerts"`
}
