package model

// LatLng 緯度経度を表す基本的な型（経路検索・スポット検索で使用）
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// POICandidate Point of Interest（候補スポット）を表すモデル
// リクエストごとにプロバイダ検索から生成される一時的な値で、永続化はしない
type POICandidate struct {
	ID          string   `json:"id"`                    // プロバイダ側のユニークID
	Name        string   `json:"name"`                  // スポット名
	Location    LatLng   `json:"location"`              // 位置情報
	Rating      float64  `json:"rating"`                // 評価値（0〜5）
	ReviewCount int      `json:"review_count"`          // レビュー数
	Types       []string `json:"types"`                 // タイプタグ（複数対応）
	PriceLevel  *int     `json:"price_level,omitempty"` // 価格帯（NULLABLE）
	Attributes  []string `json:"attributes,omitempty"`  // 属性（"view", "outdoor_seating"など）
}

// HasType 候補が指定されたタイプのいずれかを持つかチェックする
func (p *POICandidate) HasType(types ...string) bool {
	typeSet := make(map[string]struct{}, len(types))
	for _, t := range types {
		typeSet[t] = struct{}{}
	}
	for _, t := range p.Types {
		if _, ok := typeSet[t]; ok {
			return true
		}
	}
	return false
}

// HasAttribute 候補が指定された属性を持つかチェックする
func (p *POICandidate) HasAttribute(attr string) bool {
	for _, a := range p.Attributes {
		if a == attr {
			return true
		}
	}
	return false
}

// POI属性の定数
const (
	AttributeView           = "view"
	AttributeOutdoorSeating = "outdoor_seating"
	AttributeIndoorSeating  = "indoor_seating"
)
