package helper

import (
	"sort"

	"Tabitomo-App/internal/domain/model"
)

// FindHighestRated 最も評価の高い候補を見つける
func FindHighestRated(candidates []*model.POICandidate) *model.POICandidate {
	if len(candidates) == 0 {
		return nil
	}
	highest := candidates[0]
	for _, c := range candidates {
		if c.Rating > highest.Rating {
			highest = c
		}
	}
	return highest
}

// SortStopsByScore スコアの高い順に立ち寄り候補をソートする
func SortStopsByScore(stops []model.ScoredStop) {
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].Score > stops[j].Score
	})
}

// TopStops スコア上位n件を返す（破壊的にソートする）
func TopStops(stops []model.ScoredStop, n int) []model.ScoredStop {
	SortStopsByScore(stops)
	if len(stops) > n {
		return stops[:n]
	}
	return stops
}

// NormalizedPOIScore 立ち寄り候補の平均スコアを[0,1]に正規化する
// 候補がない場合は中立値0.5を返す
func NormalizedPOIScore(stops []model.ScoredStop) float64 {
	if len(stops) == 0 {
		return 0.5
	}
	var sum float64
	for _, s := range stops {
		sum += s.Score
	}
	mean := sum / float64(len(stops))
	normalized := mean / model.POIScoreNormalizer
	if normalized > 1.0 {
		return 1.0
	}
	return normalized
}

// FilterByQuality 最低評価・最低レビュー数を満たす候補のみを返す
func FilterByQuality(candidates []*model.POICandidate, minRating float64, minReviews int) []*model.POICandidate {
	var filtered []*model.POICandidate
	for _, c := range candidates {
		if c.Rating >= minRating && c.ReviewCount >= minReviews {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
