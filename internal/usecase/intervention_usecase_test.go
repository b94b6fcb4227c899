package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Tabitomo-App/internal/domain/model"
	"Tabitomo-App/internal/domain/repository"
	"Tabitomo-App/internal/domain/service"
)

type fakeWeatherProvider struct {
	snapshot model.WeatherSnapshot
	err      error
	calls    int
}

func (f *fakeWeatherProvider) GetCurrent(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snapshot := f.snapshot
	return &snapshot, nil
}

type fakePlacesProvider struct{}

func (f *fakePlacesProvider) SearchNearby(ctx context.Context, query repository.PlacesQuery) ([]*model.POICandidate, error) {
	return nil, nil
}

// fakeInterventionCache テスト用のインメモリキャッシュ
type fakeInterventionCache struct {
	seen       map[string]bool
	seenErr    error
	markErr    error
	markedKeys []string
	markedTTLs []time.Duration
}

func newFakeCache() *fakeInterventionCache {
	return &fakeInterventionCache{seen: map[string]bool{}}
}

func (f *fakeInterventionCache) SeenRecently(ctx context.Context, key string) (bool, error) {
	if f.seenErr != nil {
		return false, f.seenErr
	}
	return f.seen[key], nil
}

func (f *fakeInterventionCache) MarkSeen(ctx context.Context, key string, ttl time.Duration) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.markedKeys = append(f.markedKeys, key)
	f.markedTTLs = append(f.markedTTLs, ttl)
	f.seen[key] = true
	return nil
}

func rainyOutdoorTrip() *model.TripContext {
	return &model.TripContext{
		Destination: &model.TripDestination{
			Name:      "Yarkon Park",
			IsOutdoor: true,
			Location:  &model.LatLng{Lat: 32.1, Lng: 34.8},
		},
		CurrentWeather: &model.WeatherSnapshot{
			TemperatureC:             20,
			PrecipitationProbability: 55,
			VisibilityKm:             8,
			WindSpeedKmh:             10,
		},
	}
}

// TestInterventionUseCase_CheckTrip は介入チェックの全体フローをテストする
func TestInterventionUseCase_CheckTrip(t *testing.T) {
	ctx := context.Background()
	monitor := service.NewInterventionMonitor(&fakePlacesProvider{})

	t.Run("現在天候が未指定ならプロバイダーから取得する", func(t *testing.T) {
		weather := &fakeWeatherProvider{snapshot: model.WeatherSnapshot{
			TemperatureC:             22,
			PrecipitationProbability: 10,
			VisibilityKm:             10,
			WindSpeedKmh:             8,
		}}
		uc := NewInterventionUseCase(monitor, weather, nil)

		trip := rainyOutdoorTrip()
		trip.CurrentWeather = nil
		resp, err := uc.CheckTrip(ctx, trip)
		require.NoError(t, err)

		assert.Equal(t, 1, weather.calls)
		assert.Equal(t, 22.0, resp.WeatherSnapshot.TemperatureC)
		assert.Empty(t, resp.Interventions)
		assert.Equal(t, model.CheckIntervalDefaultSec, resp.CheckInterval)
	})

	t.Run("天候取得の失敗はエラーとして返す", func(t *testing.T) {
		weather := &fakeWeatherProvider{err: errors.New("open-meteo unreachable")}
		uc := NewInterventionUseCase(monitor, weather, nil)

		trip := rainyOutdoorTrip()
		trip.CurrentWeather = nil
		_, err := uc.CheckTrip(ctx, trip)
		require.Error(t, err)
		assert.ErrorContains(t, err, "open-meteo unreachable")
	})

	t.Run("リクエストが天候を持っていればプロバイダーを呼ばない", func(t *testing.T) {
		weather := &fakeWeatherProvider{}
		uc := NewInterventionUseCase(monitor, weather, nil)

		resp, err := uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)

		assert.Equal(t, 0, weather.calls)
		require.Len(t, resp.Interventions, 1)
		assert.Equal(t, model.InterventionWeatherOutdoorConflict, resp.Interventions[0].Type)
	})

	t.Run("警告ありなら間隔180秒・urgentなら60秒", func(t *testing.T) {
		uc := NewInterventionUseCase(monitor, &fakeWeatherProvider{}, nil)

		resp, err := uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)
		assert.Equal(t, model.CheckIntervalWarningSec, resp.CheckInterval)

		urgentTrip := rainyOutdoorTrip()
		urgentTrip.CurrentWeather.PrecipitationProbability = 70
		resp, err = uc.CheckTrip(ctx, urgentTrip)
		require.NoError(t, err)
		assert.Equal(t, model.CheckIntervalUrgentSec, resp.CheckInterval)
	})
}

// TestInterventionUseCase_Dedup は重複通知の抑制をテストする
func TestInterventionUseCase_Dedup(t *testing.T) {
	ctx := context.Background()
	monitor := service.NewInterventionMonitor(&fakePlacesProvider{})

	t.Run("同一キーの介入は2回目以降抑制される", func(t *testing.T) {
		cache := newFakeCache()
		uc := NewInterventionUseCase(monitor, &fakeWeatherProvider{}, cache)

		resp, err := uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)
		require.Len(t, resp.Interventions, 1)
		require.Len(t, cache.markedKeys, 1)
		assert.Equal(t, "Yarkon Park:weather_outdoor_conflict", cache.markedKeys[0])
		assert.Equal(t, interventionDedupTTL, cache.markedTTLs[0])

		resp, err = uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)
		assert.Empty(t, resp.Interventions)
		assert.Equal(t, model.CheckIntervalDefaultSec, resp.CheckInterval)
	})

	t.Run("キャッシュ障害時は抑制せずに通す（フェイルオープン）", func(t *testing.T) {
		cache := newFakeCache()
		cache.seenErr = errors.New("redis down")
		uc := NewInterventionUseCase(monitor, &fakeWeatherProvider{}, cache)

		resp, err := uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)
		assert.Len(t, resp.Interventions, 1)
	})

	t.Run("書き込み失敗も介入を落とさない", func(t *testing.T) {
		cache := newFakeCache()
		cache.markErr = errors.New("redis down")
		uc := NewInterventionUseCase(monitor, &fakeWeatherProvider{}, cache)

		resp, err := uc.CheckTrip(ctx, rainyOutdoorTrip())
		require.NoError(t, err)
		assert.Len(t, resp.Interventions, 1)
	})
}
