package strategy

import (
	"context"
	"sync"

	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
)

// stubRoutingProvider テスト用の固定応答を返すRoutingProvider
type stubRoutingProvider struct {
	mu    sync.Mutex
	route model.RoutePlan
	err   error
	calls int
}

func (s *stubRoutingProvider) GetRoute(ctx context.Context, origin, destination model.LatLng) (*model.RoutePlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	route := s.route
	return &route, nil
}

func (s *stubRoutingProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// stubPlacesProvider テスト用の固定候補を返すPlacesProvider
type stubPlacesProvider struct {
	mu         sync.Mutex
	candidates []*model.POICandidate
	err        error
	lastQuery  repository.PlacesQuery
	calls      int
}

func (s *stubPlacesProvider) SearchNearby(ctx context.Context, query repository.PlacesQuery) ([]*model.POICandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	s.lastQuery = query
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

// fairWeatherInput 全モードが有効になる良好な天候の入力を生成する
func fairWeatherInput() OptimizeInput {
	snapshot := model.WeatherSnapshot{
		TemperatureC:             22,
		PrecipitationProbability: 5,
		VisibilityKm:             10,
		WindSpeedKmh:             8,
	}
	return OptimizeInput{
		Origin:      model.LatLng{Lat: 35.0, Lng: 135.0},
		Destination: model.LatLng{Lat: 35.1, Lng: 135.1},
		Weather:     snapshot,
		Scores: model.WeatherScores{
			Precipitation: 1.0,
			Visibility:    1.0,
			Temperature:   1.0,
			Wind:          1.0,
			Overall:       1.0,
		},
	}
}

func testCandidate(name string, rating float64, reviews int, location model.LatLng, types ...string) *model.POICandidate {
	return &model.POICandidate{
		ID:          name,
		Name:        name,
		Location:    location,
		Rating:      rating,
		ReviewCount: reviews,
		Types:       types,
	}
}
