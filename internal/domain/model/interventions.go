package model

// InterventionType 介入の種別
const (
	InterventionWeatherOutdoorConflict = "weather_outdoor_conflict"
	InterventionTrafficDelay           = "traffic_delay"
	InterventionWeatherDegradation     = "weather_degradation"
)

// Severity 介入の深刻度
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
	SeverityUrgent  = "urgent"
)

// StatusPending 介入の初期ステータス
// 以降の遷移は外部コラボレータの責務で、本サブシステムでは変更しない
const StatusPending = "pending"

// Suggestion 介入に添える提案
const (
	SuggestionAlternativePlace = "alternative_place"
	SuggestionRouteChange      = "route_change"
	SuggestionTimeAdjustment   = "time_adjustment"
)

// TripDestination 進行中トリップの目的地情報
type TripDestination struct {
	Location  *LatLng `json:"location"`
	IsOutdoor bool    `json:"is_outdoor"`
	Name      string  `json:"name,omitempty"`
}

// TripContext 進行中トリップの状況
type TripContext struct {
	Destination      *TripDestination `json:"destination"`
	CurrentWeather   *WeatherSnapshot `json:"current_weather,omitempty"`
	PreviousWeather  *WeatherSnapshot `json:"previous_weather,omitempty"`
	LiveTrafficDelay int              `json:"live_traffic_delay,omitempty"` // 秒
}

// Suggestion 介入に添える具体的な提案
type Suggestion struct {
	Type  string        `json:"type"` // alternative_place / route_change / time_adjustment
	Title string        `json:"title"`
	Place *POICandidate `json:"place,omitempty"` // alternative_placeの場合のみ
}

// Intervention トリップ中の割り込み警告
// statusは本サブシステム内では常に"pending"のまま遷移しない
type Intervention struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Severity    string       `json:"severity"`
	Title       string       `json:"title"`
	Message     string       `json:"message"`
	Reasoning   []string     `json:"reasoning"`
	Suggestions []Suggestion `json:"suggestions"`
	Status      string       `json:"status"` // 初期値"pending"
}

// InterventionResponse POST /planner/interventions のレスポンスボディ
type InterventionResponse struct {
	Interventions   []Intervention  `json:"interventions"`
	CheckInterval   int             `json:"check_interval"` // 秒
	WeatherSnapshot WeatherSnapshot `json:"weather_snapshot"`
}
