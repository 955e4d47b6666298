package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/askmeteo/weather-chat/internal/weather"
)

// DefaultWeatherBaseURL is the Open-Meteo forecast endpoint.
const DefaultWeatherBaseURL = "https://api.open-meteo.com/v1/forecast"

// currentFields is the fixed field list requested from the provider. The
// response decoder below depends on exactly these fields being present.
const currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation,weather_code,wind_speed_10m"

// OpenMeteoClient implements weather.CurrentProvider against the Open-Meteo
// forecast API. Failures propagate to the caller.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewOpenMeteoClient(client *http.Client, baseURL string) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("openmeteo"),
	}
}

// FetchCurrent fetches current conditions for the given coordinates.
func (c *OpenMeteoClient) FetchCurrent(ctx context.Context, lat, lon float64) (weather.CurrentObservation, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", lat))
		values.Set("longitude", fmt.Sprintf("%f", lon))
		values.Set("current", currentFields)

		return http.NewRequest(http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		return weather.CurrentObservation{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Current struct {
			Time                string  `json:"time"`
			Temperature         float64 `json:"temperature_2m"`
			RelativeHumidity    float64 `json:"relative_humidity_2m"`
			ApparentTemperature float64 `json:"apparent_temperature"`
			Precipitation       float64 `json:"precipitation"`
			WeatherCode         int     `json:"weather_code"`
			WindSpeed           float64 `json:"wind_speed_10m"`
		} `json:"current"`
		CurrentUnits struct {
			Temperature string `json:"temperature_2m"`
			WindSpeed   string `json:"wind_speed_10m"`
		} `json:"current_units"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.CurrentObservation{}, fmt.Errorf("decode weather response: %w", err)
	}

	return weather.CurrentObservation{
		Time:                payload.Current.Time,
		Temperature:         payload.Current.Temperature,
		Humidity:            payload.Current.RelativeHumidity,
		ApparentTemperature: payload.Current.ApparentTemperature,
		Precipitation:       payload.Current.Precipitation,
		WeatherCode:         payload.Current.WeatherCode,
		WindSpeed:           payload.Current.WindSpeed,
		TemperatureUnit:     payload.CurrentUnits.Temperature,
		WindSpeedUnit:       payload.CurrentUnits.WindSpeed,
	}, nil
}
