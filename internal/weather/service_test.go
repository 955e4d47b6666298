package weather

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubGeocoder struct {
	results []LocationMatch
	calls   int
}

func (s *stubGeocoder) Lookup(_ context.Context, _ string) []LocationMatch {
	s.calls++
	return s.results
}

type stubProvider struct {
	obs   CurrentObservation
	err   error
	calls int
}

func (s *stubProvider) FetchCurrent(_ context.Context, _, _ float64) (CurrentObservation, error) {
	s.calls++
	return s.obs, s.err
}

func parisObservation() CurrentObservation {
	return CurrentObservation{
		Time:                "2025-03-07T15:00",
		Temperature:         12.5,
		Humidity:            65,
		ApparentTemperature: 11.2,
		Precipitation:       0,
		WeatherCode:         2,
		WindSpeed:           8.4,
		TemperatureUnit:     "°C",
		WindSpeedUnit:       "km/h",
	}
}

func TestGetWeatherByLocationValidation(t *testing.T) {
	geo := &stubGeocoder{}
	prov := &stubProvider{}
	svc := NewService(geo, prov)

	// "東" is a single character even though it encodes to three bytes.
	for _, loc := range []string{"", "x", " x ", "  ", "東"} {
		out := svc.GetWeatherByLocation(context.Background(), loc)
		if out.Success {
			t.Errorf("expected validation failure for %q", loc)
		}
		if out.Message != "Please provide a valid location name (at least 2 characters)." {
			t.Errorf("unexpected validation message %q", out.Message)
		}
	}

	if geo.calls != 0 || prov.calls != 0 {
		t.Fatalf("validation failure must not reach the network: geocoder=%d provider=%d", geo.calls, prov.calls)
	}
}

func TestGetWeatherByLocationNotFound(t *testing.T) {
	geo := &stubGeocoder{}
	prov := &stubProvider{}
	svc := NewService(geo, prov)

	out := svc.GetWeatherByLocation(context.Background(), "Atlantis")
	if out.Success || out.WeatherInfo != nil {
		t.Fatalf("expected failure without WeatherInfo, got %+v", out)
	}
	if out.Error == nil || out.Error.Code != CodeLocationNotFound {
		t.Fatalf("expected code %s, got %+v", CodeLocationNotFound, out.Error)
	}
	if prov.calls != 0 {
		t.Fatalf("provider must not be called when geocoding is empty")
	}
}

func TestGetWeatherByLocationSuccess(t *testing.T) {
	geo := &stubGeocoder{results: []LocationMatch{{
		Name:      "Paris",
		Country:   "France",
		Latitude:  48.85,
		Longitude: 2.35,
	}}}
	prov := &stubProvider{obs: parisObservation()}
	svc := NewService(geo, prov)

	out := svc.GetWeatherByLocation(context.Background(), "Paris")
	if !out.Success || out.WeatherInfo == nil {
		t.Fatalf("expected success, got %+v", out)
	}

	info := out.WeatherInfo
	if info.Location != "Paris, France" {
		t.Errorf("location display = %q, want %q", info.Location, "Paris, France")
	}
	if info.Description != "Partly cloudy" {
		t.Errorf("description = %q, want %q", info.Description, "Partly cloudy")
	}
	if info.Temperature != 12.5 || info.Unit != "°C" || info.FeelsLike != 11.2 {
		t.Errorf("unexpected temperature fields: %+v", info)
	}
	if info.Country != "France" || info.Latitude != 48.85 || info.Longitude != 2.35 {
		t.Errorf("unexpected location fields: %+v", info)
	}
}

func TestGetWeatherByLocationAdminRegion(t *testing.T) {
	geo := &stubGeocoder{results: []LocationMatch{{
		Name:    "Paris",
		Country: "France",
		Admin1:  "Île-de-France",
	}}}
	svc := NewService(geo, &stubProvider{obs: parisObservation()})

	out := svc.GetWeatherByLocation(context.Background(), "Paris")
	if !out.Success {
		t.Fatalf("expected success, got %+v", out)
	}
	if out.WeatherInfo.Location != "Paris, Île-de-France, France" {
		t.Errorf("location display = %q, want %q", out.WeatherInfo.Location, "Paris, Île-de-France, France")
	}
}

func TestGetWeatherByLocationProviderError(t *testing.T) {
	geo := &stubGeocoder{results: []LocationMatch{{Name: "Paris", Country: "France"}}}
	prov := &stubProvider{err: errors.New("connection refused")}
	svc := NewService(geo, prov)

	out := svc.GetWeatherByLocation(context.Background(), "Paris")
	if out.Success || out.WeatherInfo != nil {
		t.Fatalf("expected failure, got %+v", out)
	}
	if out.Error == nil || out.Error.Code != CodeAPIError {
		t.Fatalf("expected code %s, got %+v", CodeAPIError, out.Error)
	}
	if out.Message != "Error fetching weather data. Please try again later." {
		t.Errorf("unexpected message %q", out.Message)
	}
}

func TestProcessQueryForecast(t *testing.T) {
	geo := &stubGeocoder{results: []LocationMatch{{Name: "Tokyo", Country: "Japan"}}}
	svc := NewService(geo, &stubProvider{})

	reply := svc.ProcessQuery(context.Background(), "forecast Tokyo")
	if reply.Location != "Tokyo" {
		t.Errorf("reply location = %q, want %q", reply.Location, "Tokyo")
	}
	if !strings.HasPrefix(reply.Content, "Here's the 5-day forecast for Tokyo:\n\n") {
		t.Fatalf("unexpected forecast header: %q", reply.Content)
	}

	wantLines := []string{
		"Fri, Mar 7: Partly cloudy, 8.1°C to 12.4°C",
		"Sat, Mar 8: Slight rain, 7.4°C to 13.2°C",
		"Sun, Mar 9: Mainly clear, 9.3°C to 14.5°C",
		"Mon, Mar 10: Clear sky, 7.8°C to 11.8°C",
		"Tue, Mar 11: Moderate rain, 6.5°C to 12.9°C",
	}
	for _, line := range wantLines {
		if !strings.Contains(reply.Content, line) {
			t.Errorf("forecast reply missing %q in %q", line, reply.Content)
		}
	}
}

func TestProcessQueryForecastNoLocation(t *testing.T) {
	svc := NewService(&stubGeocoder{}, &stubProvider{})

	reply := svc.ProcessQuery(context.Background(), "forecast")
	want := "I couldn't determine which location you want a forecast for. Please specify a city or place."
	if reply.Content != want || reply.Location != "" {
		t.Fatalf("reply = %+v, want content %q", reply, want)
	}
}

func TestProcessQueryForecastLocationNotFound(t *testing.T) {
	svc := NewService(&stubGeocoder{}, &stubProvider{})

	reply := svc.ProcessQuery(context.Background(), "forecast Narnia")
	want := `I couldn't find the location "narnia". Please try a different place.`
	if reply.Content != want {
		t.Fatalf("reply content = %q, want %q", reply.Content, want)
	}
}

func TestProcessQueryCurrent(t *testing.T) {
	geo := &stubGeocoder{results: []LocationMatch{{Name: "Lisbon", Country: "Portugal"}}}
	prov := &stubProvider{obs: parisObservation()}
	svc := NewService(geo, prov)

	reply := svc.ProcessQuery(context.Background(), "weather Lisbon")
	if reply.Location != "Lisbon, Portugal" {
		t.Errorf("reply location = %q, want %q", reply.Location, "Lisbon, Portugal")
	}
	if !strings.HasPrefix(reply.Content, "The current weather in Lisbon, Portugal is partly cloudy") {
		t.Errorf("unexpected summary: %q", reply.Content)
	}
}

func TestProcessQueryCurrentNotFound(t *testing.T) {
	svc := NewService(&stubGeocoder{}, &stubProvider{})

	reply := svc.ProcessQuery(context.Background(), "weather Atlantis")
	want := "Location not found. Please try with a different city or location name."
	if reply.Content != want || reply.Location != "" {
		t.Fatalf("reply = %+v, want content %q", reply, want)
	}
}

func TestProcessQueryCurrentNoLocation(t *testing.T) {
	svc := NewService(&stubGeocoder{}, &stubProvider{})

	reply := svc.ProcessQuery(context.Background(), "weather")
	want := "I couldn't determine which location you're asking about. Please specify a city or place."
	if reply.Content != want {
		t.Fatalf("reply content = %q, want %q", reply.Content, want)
	}
}
