package model

// RoutePlan 経路検索の結果
type RoutePlan struct {
	Polyline            string `json:"polyline"`
	DurationSeconds     int    `json:"duration_seconds"`
	DistanceMeters      int    `json:"distance_meters"`
	TrafficDelaySeconds int    `json:"traffic_delay_seconds,omitempty"`
}

// UserPrefs ユーザーの好み設定（推薦の加点に使用）
type UserPrefs struct {
	PreferScenic    bool `json:"prefer_scenic"`
	PreferCulinary  bool `json:"prefer_culinary"`
	TimeConstrained bool `json:"time_constrained"`
}

// OptimizeRequest POST /planner/optimize のリクエストボディ
type OptimizeRequest struct {
	Origin      *LatLng    `json:"origin"`
	Destination *LatLng    `json:"destination"`
	UserPrefs   *UserPrefs `json:"user_prefs,omitempty"`
}

// ModePackages 3モードのパッケージをまとめた構造体
// モードごとに型が異なるため、フィールドで静的に区別する
type ModePackages struct {
	Efficiency *EfficiencyPackage `json:"efficiency"`
	Scenic     *ScenicPackage     `json:"scenic"`
	Foodie     *FoodiePackage     `json:"foodie"`
}

// OptimizationResult 最適化リクエスト全体の結果
type OptimizationResult struct {
	Modes           ModePackages    `json:"modes"`
	Recommended     string          `json:"recommended"`
	RecommendedName string          `json:"recommended_name"` // 表示用の日本語名
	Reason          string          `json:"reason"`
	WeatherInsights WeatherInsights `json:"weather_insights"`
	DisabledModes   []DisabledMode  `json:"disabled_modes"`
}

// OptimizeResponse POST /planner/optimize のレスポンスボディ
// 個別モードが無効でも常にok:trueを返す（§エラー設計）
type OptimizeResponse struct {
	OK     bool                `json:"ok"`
	Result *OptimizationResult `json:"result"`
}
