package maps

import (
	"context"
	"errors"
	"fmt"

	"googlemaps.github.io/maps"

	"Tabitomo-App/internal/domain/model"
)

// GoogleRoutingProvider Google Maps Directions APIを使用した経路検索の実装
type GoogleRoutingProvider struct {
	client *maps.Client
}

// NewGoogleRoutingProvider 新しいプロバイダを生成する
func NewGoogleRoutingProvider(apiKey string) (*GoogleRoutingProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("Mapsクライアントの生成に失敗: %w", err)
	}
	return &GoogleRoutingProvider{client: client}, nil
}

// GetRoute Directions APIを呼び出して最速ルートを取得する
// duration_in_trafficが得られた場合は渋滞遅延として差分を載せる
func (g *GoogleRoutingProvider) GetRoute(ctx context.Context, origin, destination model.LatLng) (*model.RoutePlan, error) {
	req := &maps.DirectionsRequest{
		Origin:        formatLatLng(origin),
		Destination:   formatLatLng(destination),
		Mode:          maps.TravelModeDriving,
		DepartureTime: "now",
	}

	routes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("経路APIの呼び出しに失敗: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return nil, errors.New("APIから有効なルートが返されませんでした")
	}

	firstRoute := routes[0]
	var durationSec, trafficSec, distanceMeters int
	for _, leg := range firstRoute.Legs {
		durationSec += int(leg.Duration.Seconds())
		trafficSec += int(leg.DurationInTraffic.Seconds())
		distanceMeters += leg.Distance.Meters
	}

	trafficDelay := 0
	if trafficSec > durationSec {
		trafficDelay = trafficSec - durationSec
	}

	return &model.RoutePlan{
		Polyline:            firstRoute.OverviewPolyline.Points,
		DurationSeconds:     durationSec,
		DistanceMeters:      distanceMeters,
		TrafficDelaySeconds: trafficDelay,
	}, nil
}

func formatLatLng(p model.LatLng) string {
	return fmt.Sprintf("%f,%f", p.Lat, p.Lng)
}
