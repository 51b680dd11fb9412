package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultAmapWeatherURL = "https://restapi.amap.com/v3/weather/weatherInfo"

// WeatherClientInterface fetches the forecast payload for a city. The payload
// stays opaque to callers; it is embedded verbatim into adjustment prompts.
type WeatherClientInterface interface {
	GetWeather(ctx context.Context, city string) (json.RawMessage, error)
}

type AmapWeatherClient struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func NewAmapWeatherClient(apiKey string) WeatherClientInterface {
	return &AmapWeatherClient{
		apiKey:  apiKey,
		baseURL: defaultAmapWeatherURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *AmapWeatherClient) GetWeather(ctx context.Context, city string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("city", city)
	// extensions=all requests the multi-day forecast rather than live weather.
	params.Set("extensions", "all")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherService, err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWeatherService, err)
	}

	var status struct {
		Status string `json:"status"`
		Info   string `json:"info"`
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("%w: unexpected response: %v", ErrWeatherService, err)
	}
	if status.Status != "1" {
		return nil, fmt.Errorf("%w: %s", ErrWeatherService, status.Info)
	}

	return body, nil
}
