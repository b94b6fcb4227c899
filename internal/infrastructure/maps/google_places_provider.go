package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// GooglePlacesProvider Google Places API（Nearby Search）を使用したスポット検索の実装
type GooglePlacesProvider struct {
	client *maps.Client
}

// NewGooglePlacesProvider 新しいプロバイダを生成する
func NewGooglePlacesProvider(apiKey string) (*GooglePlacesProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Mapsクライアントの生成に失敗: %w", err)
	}
	return &GooglePlacesProvider{client: client}, nil
}

// SearchNearby 指定タイプごとにNearby Searchを実行し、PlaceIDで重複排除して返す
// 評価・レビュー数の下限フィルタはここで適用する
func (g *GooglePlacesProvider) SearchNearby(ctx context.Context, query repository.PlacesQuery) ([]*model.POICandidate, error) {
	location := &maps.LatLng{Lat: query.Location.Lat, Lng: query.Location.Lng}

	searchTypes := query.Types
	if len(searchTypes) == 0 {
		searchTypes = []string{""}
	}

	seen := make(map[string]struct{})
	var candidates []*model.POICandidate

	for _, searchType := range searchTypes {
		req := &maps.NearbySearchRequest{
			Location: location,
			Radius:   uint(query.RadiusMeters),
			Keyword:  query.Keyword,
		}
		if searchType != "" {
			req.Type = maps.PlaceType(searchType)
		}

		resp, err := g.client.NearbySearch(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("スポットAPIの呼び出しに失敗: %w", err)
		}

		for _, result := range resp.Results {
			if _, ok := seen[result.PlaceID]; ok {
				continue
			}
			seen[result.PlaceID] = struct{}{}

			candidate := toCandidate(result)
			if query.MinRating > 0 && candidate.Rating < query.MinRating {
				continue
			}
			if query.MinReviews > 0 && candidate.ReviewCount < query.MinReviews {
				continue
			}
			candidates = append(candidates, candidate)
		}
	}

	return candidates, nil
}

// toCandidate APIレスポンスをドメインモデルに変換する
// 属性（屋外席など）はNearby Searchの基本データには含まれないため、
// 得られた場合のみ載せる
func toCandidate(result maps.PlacesSearchResult) *model.POICandidate {
	candidate := &model.POICandidate{
		ID:   result.PlaceID,
		Name: result.Name,
		Location: model.LatLng{
			Lat: result.Geometry.Location.Lat,
			Lng: result.Geometry.Location.Lng,
		},
		Rating:      float64(result.Rating),
		ReviewCount: result.UserRatingsTotal,
		Types:       result.Types,
	}
	if result.PriceLevel > 0 {
		priceLevel := result.PriceLevel
		candidate.PriceLevel = &priceLevel
	}
	return candidate
}
