package model

import "fmt"

// DisableCode モードが無効化された原因を表す構造化コード
type DisableCode string

const (
	DisableRouteFailed            DisableCode = "route_calculation_failed"
	DisablePlacesSearchFailed     DisableCode = "places_search_failed"
	DisableLowVisibility          DisableCode = "low_visibility"
	DisableHighRainChance         DisableCode = "high_rain_chance"
	DisableNoQualifyingRestaurant DisableCode = "no_qualifying_restaurant"
)

// DisableReason 無効化の原因と付随データ
// コードで機械的に判定でき、Message()で表示用の文字列に変換する
type DisableReason struct {
	Code             DisableCode `json:"code"`
	VisibilityKm     float64     `json:"visibility_km,omitempty"`
	PrecipitationPct float64     `json:"precipitation_pct,omitempty"`
}

// Message 表示用の文字列を生成する
func (r DisableReason) Message() string {
	switch r.Code {
	case DisableRouteFailed:
		return "Route calculation failed"
	case DisablePlacesSearchFailed:
		return "Place search failed"
	case DisableLowVisibility:
		return fmt.Sprintf("Foggy view: visibility %gkm < 5km minimum", r.VisibilityKm)
	case DisableHighRainChance:
		return fmt.Sprintf("Rain expected: %g%% > 30%% threshold", r.PrecipitationPct)
	case DisableNoQualifyingRestaurant:
		return "No qualifying restaurants (rating >= 4.4, reviews >= 100)"
	default:
		return string(r.Code)
	}
}

// ScoredStop スコア付きの立ち寄りスポット
type ScoredStop struct {
	Candidate    POICandidate `json:"candidate"`
	Score        float64      `json:"score"`
	DetourMinute float64      `json:"detour_minutes,omitempty"` // 直行ルートに対する寄り道時間
}

// RestaurantAlternative Foodieモードの代替候補（要約のみ）
type RestaurantAlternative struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	Score  float64 `json:"score"`
}

// EfficiencyPackage 最速ルートモードの結果
type EfficiencyPackage struct {
	Mode                 string         `json:"mode"` // 常に"efficiency"
	Disabled             bool           `json:"disabled"`
	Reason               *DisableReason `json:"reason,omitempty"`
	Route                *RoutePlan     `json:"route,omitempty"`
	Stops                []ScoredStop   `json:"stops,omitempty"`                  // スコア上位3件
	TotalDurationSeconds int            `json:"total_duration_seconds,omitempty"` // ルート+立ち寄り時間
	HazardAlert          bool           `json:"hazard_alert"`
	CombinedScore        float64        `json:"combined_score"`
}

// ScenicPackage 絶景ルートモードの結果
type ScenicPackage struct {
	Mode             string         `json:"mode"` // 常に"scenic"
	Disabled         bool           `json:"disabled"`
	Reason           *DisableReason `json:"reason,omitempty"`
	DowngradeWarning bool           `json:"downgrade_warning,omitempty"`
	FallbackMode     string         `json:"fallback_mode,omitempty"` // 無効化時は"efficiency"
	Route            *RoutePlan     `json:"route,omitempty"`
	ViewPoints       []ScoredStop   `json:"view_points,omitempty"` // スコア上位5件
	ScenicScore      float64        `json:"scenic_score,omitempty"`
	DurationIncrease string         `json:"duration_increase,omitempty"` // 表示用（例: "20%"）
	CombinedScore    float64        `json:"combined_score"`
}

// FoodiePackage グルメルートモードの結果
// ルート計算はレストラン選定の「後」に行う（food-first）
type FoodiePackage struct {
	Mode               string                  `json:"mode"` // 常に"foodie"
	Disabled           bool                    `json:"disabled"`
	Reason             *DisableReason          `json:"reason,omitempty"`
	SelectedRestaurant *ScoredStop             `json:"selected_restaurant,omitempty"`
	Alternatives       []RestaurantAlternative `json:"alternatives,omitempty"`
	RouteToRestaurant  *RoutePlan              `json:"route_to_restaurant,omitempty"`
	RouteToDestination *RoutePlan              `json:"route_to_destination,omitempty"`
	CombinedScore      float64                 `json:"combined_score"`
}

// DisabledMode 無効化されたモードの一覧項目
type DisabledMode struct {
	Mode   string `json:"mode"`
	Reason string `json:"reason"`
}
