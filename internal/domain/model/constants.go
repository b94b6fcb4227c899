package model

// ModeConstants アプリケーションで使用する移動モードの定数
const (
	ModeEfficiency = "efficiency"
	ModeScenic     = "scenic"
	ModeFoodie     = "foodie"
)

// ModeNameMap モードIDから日本語名へのマッピング
var ModeNameMap = map[string]string{
	ModeEfficiency: "最速ルート",
	ModeScenic:     "絶景ルート",
	ModeFoodie:     "グルメルート",
}

// GetModeJapaneseName モードIDから日本語名を取得する
func GetModeJapaneseName(mode string) string {
	if name, ok := ModeNameMap[mode]; ok {
		return name
	}
	return mode // デフォルトはそのまま返す
}

// GetAllModes 全モードの一覧を取得する
// 順序は推薦時のタイブレーク優先順位（efficiency > foodie > scenic）を兼ねる
func GetAllModes() []string {
	return []string{
		ModeEfficiency,
		ModeFoodie,
		ModeScenic,
	}
}

// 天候スコアの重み（合計1.0）
const (
	WeatherWeightPrecipitation = 0.4
	WeatherWeightVisibility    = 0.3
	WeatherWeightTemperature   = 0.2
	WeatherWeightWind          = 0.1
)

// Efficiencyモードの定数
const (
	EfficiencySearchRadiusMeters = 500  // ルート始点からの検索半径
	EfficiencyMinRating          = 4.0  // 候補の最低評価
	EfficiencyMaxDetourMinutes   = 5.0  // 許容する寄り道時間（暗黙の上限）
	EfficiencyTypeBonus          = 1.2  // カフェ/ファストフードのボーナス
	EfficiencyMaxStops           = 3    // 採用する立ち寄り数
	EfficiencyStopSeconds        = 300  // 1箇所あたりの追加滞在時間
	EfficiencyHazardThreshold    = 0.4  // overallがこの値未満で警告
	EfficiencyWeightPOI          = 0.25 // 複合スコアのPOI比重
	EfficiencyWeightRoute        = 0.55 // 複合スコアのルート比重
	EfficiencyWeightWeather      = 0.20 // 複合スコアの天候比重
)

// Scenicモードの定数
const (
	ScenicMinVisibilityKm       = 5.0  // これ未満は無効化（霧）
	ScenicMaxPrecipitationPct   = 30.0 // これ超過は無効化（雨）
	ScenicDurationMultiplier    = 1.20 // 所要時間の固定インフレ率
	ScenicDistanceMultiplier    = 1.15 // 距離の固定インフレ率
	ScenicFixedScore            = 0.85 // 固定のヒューリスティック定数
	ScenicSearchRadiusMeters    = 2000 // 中間地点からの検索半径
	ScenicSearchKeyword         = "scenic view nature"
	ScenicViewAttributeBonus    = 0.3  // "view"属性のボーナス
	ScenicOutdoorSeatingBonus   = 0.2  // "outdoor_seating"属性のボーナス
	ScenicParkTypeBonus         = 0.15 // parkタイプのボーナス
	ScenicMaxVisibilityBonus    = 1.5  // visibilityBonusの上限
	ScenicMaxStops              = 5    // 採用する絶景スポット数
	ScenicWeightPOI             = 0.35
	ScenicWeightRoute           = 0.30
	ScenicWeightWeather         = 0.35
)

// Foodieモードの定数
const (
	FoodieSearchRadiusMeters  = 10000 // 中間地点からの検索半径
	FoodieMinRating           = 4.4   // 緩和条件の最低評価
	FoodieMinReviews          = 100   // 緩和条件の最低レビュー数
	FoodieStrictMinRating     = 4.6   // 厳格条件の最低評価
	FoodieStrictMinReviews    = 500   // 厳格条件の最低レビュー数
	FoodieRainFilterPct       = 20.0  // これ超過で屋外専用の店を除外
	FoodieHighRatingBonus     = 1.3   // rating >= 4.8
	FoodieGoodRatingBonus     = 1.15  // rating >= 4.6
	FoodieHighVolumeBonus     = 1.2   // reviews >= 1000
	FoodieGoodVolumeBonus     = 1.1   // reviews >= 500
	FoodieMaxAlternatives     = 3     // 代替候補の数
	FoodieWeightPOI           = 0.65
	FoodieWeightRoute         = 0.15
	FoodieWeightWeather       = 0.20
)

// Recommenderの定数
const (
	BaseDesirability         = 0.5 // 各モードの初期望ましさ
	ScenicWeatherBonus       = 0.4 // overall >= 0.8 のとき
	ScenicWeatherThreshold   = 0.8
	EfficiencyWeatherBonus   = 0.3 // overall < 0.6 のとき
	EfficiencyWeatherCeiling = 0.6
	FoodieMealTimeBonus      = 0.3 // 食事時間帯のとき
	UserPreferenceBonus      = 0.3 // ユーザー設定による加点
)

// IsMealHour ローカル時刻の時が食事時間帯（11-14時, 18-21時）かを判定する
func IsMealHour(hour int) bool {
	return (hour >= 11 && hour <= 14) || (hour >= 18 && hour <= 21)
}

// InterventionMonitorの定数
const (
	OutdoorPrecipThreshold    = 40.0 // 屋外目的地で雨の懸念となる降水確率
	OutdoorVisibilityKm       = 2.0  // 屋外目的地で懸念となる視界
	OutdoorWindKmh            = 50.0 // 屋外目的地で懸念となる風速
	OutdoorUrgentPrecipPct    = 60.0 // これ超過でurgent
	OutdoorUrgentVisibilityKm = 1.0  // これ未満でurgent
	IndoorSearchRadiusMeters  = 20000
	IndoorSearchKeyword       = "indoor"
	IndoorMaxAlternatives     = 3
	TrafficDelayWarningSec    = 1800 // 30分
	TrafficDelayUrgentSec     = 3600 // 60分
	DegradationThreshold      = 0.3
	DegradationUrgent         = 0.7
	DegradationPrecipMargin   = 20.0 // 降水確率の悪化が顕著と見なす差分(pt)
	DegradationVisibilityKm   = 3.0  // 視界の悪化が顕著と見なす差分(km)
	DegradationWindKmh        = 15.0 // 風速の悪化が顕著と見なす差分(km/h)
)

// 次回ポーリング間隔（秒）
const (
	CheckIntervalUrgentSec  = 60
	CheckIntervalWarningSec = 180
	CheckIntervalDefaultSec = 300
)

// POIスコアの正規化に使う分母（評価値スケールに揃える）
const POIScoreNormalizer = 5.0
