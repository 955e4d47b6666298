package providers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/askmeteo/weather-chat/internal/weather"
)

// DefaultGeocodingBaseURL is the Open-Meteo geocoding search endpoint.
const DefaultGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingClient implements weather.Geocoder against the Open-Meteo
// geocoding API. Transport and decode failures are logged and collapsed into
// an empty result set; callers only ever distinguish "found" from "not found".
type GeocodingClient struct {
	baseURL string
	client  *http.Client
	circuit *gobreaker.CircuitBreaker
}

func NewGeocodingClient(client *http.Client, baseURL string) *GeocodingClient {
	if baseURL == "" {
		baseURL = DefaultGeocodingBaseURL
	}
	return &GeocodingClient{
		baseURL: baseURL,
		client:  client,
		circuit: newBreaker("geocoding"),
	}
}

// Lookup resolves a place name to location records. The first result is the
// best match; only one is requested.
func (c *GeocodingClient) Lookup(ctx context.Context, name string) []weather.LocationMatch {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("name", name)
		values.Set("count", "1")
		values.Set("language", "en")
		values.Set("format", "json")

		return http.NewRequest(http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, c.client, c.circuit, buildRequest)
	if err != nil {
		log.Printf("geocoding: lookup failed for %q: %v", name, err)
		return nil
	}
	defer resp.Body.Close()

	var payload struct {
		Results []weather.LocationMatch `json:"results"`
		Error   bool                    `json:"error"`
		Reason  string                  `json:"reason"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("geocoding: decode failed for %q: %v", name, err)
		return nil
	}

	if payload.Error {
		log.Printf("geocoding: provider rejected %q: %s", name, payload.Reason)
		return nil
	}

	return payload.Results
}
