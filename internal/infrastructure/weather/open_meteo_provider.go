package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker/v2"

	"Tabitomo-App/internal/domain/model"
)

const defaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoProvider Open-Meteo APIを使用した天候取得の実装
// APIキー不要。連続失敗時はサーキットブレーカーで呼び出しを遮断する
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*model.WeatherSnapshot]
}

// NewOpenMeteoProvider 新しいプロバイダを生成する
func NewOpenMeteoProvider() *OpenMeteoProvider {
	return NewOpenMeteoProviderWithBaseURL(defaultBaseURL)
}

// NewOpenMeteoProviderWithBaseURL ベースURLを指定してプロバイダを生成する（テスト用）
func NewOpenMeteoProviderWithBaseURL(baseURL string) *OpenMeteoProvider {
	breaker := gobreaker.NewCircuitBreaker[*model.WeatherSnapshot](gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &OpenMeteoProvider{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		breaker:    breaker,
	}
}

// GetCurrent 指定地点の現在の天候スナップショットを取得する
func (p *OpenMeteoProvider) GetCurrent(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error) {
	return p.breaker.Execute(func() (*model.WeatherSnapshot, error) {
		return p.fetch(ctx, location)
	})
}

func (p *OpenMeteoProvider) fetch(ctx context.Context, location model.LatLng) (*model.WeatherSnapshot, error) {
	// 1. APIリクエストURLを構築
	params := url.Values{}
	params.Set("latitude", fmt.Sprintf("%f", location.Lat))
	params.Set("longitude", fmt.Sprintf("%f", location.Lng))
	params.Set("current", "temperature_2m,precipitation_probability,visibility,wind_speed_10m,cloud_cover")
	params.Set("wind_speed_unit", "kmh")
	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())

	// 2. HTTPリクエストを作成・実行
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("APIからエラーステータスが返されました: %s", resp.Status)
	}

	// 3. JSONレスポンスをパース
	var apiResp openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	// 4. ドメインモデルに変換して返す（視界はm→km）
	return &model.WeatherSnapshot{
		TemperatureC:             apiResp.Current.Temperature2m,
		PrecipitationProbability: apiResp.Current.PrecipitationProbability,
		VisibilityKm:             apiResp.Current.Visibility / 1000.0,
		WindSpeedKmh:             apiResp.Current.WindSpeed10m,
		CloudCover:               apiResp.Current.CloudCover,
	}, nil
}

// --- Open-Meteo APIのレスポンスをパースするための構造体 ---

type openMeteoResponse struct {
	Current openMeteoCurrent `json:"current"`
}

type openMeteoCurrent struct {
	Temperature2m            float64 `json:"temperature_2m"`
	PrecipitationProbability float64 `json:"precipitation_probability"`
	Visibility               float64 `json:"visibility"` // メートル
	WindSpeed10m             float64 `json:"wind_speed_10m"`
	CloudCover               float64 `json:"cloud_cover"`
}
